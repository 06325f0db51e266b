package service

import "errors"

var ErrMissingCartField = errors.New("userId and productId are required")
