package repository

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID    = errors.New("invalid document id")
	ErrNotFound     = errors.New("document not found")
	ErrConnection   = errors.New("store connection failed")
	ErrCartNotFound = fmt.Errorf("cart: %w", ErrNotFound)
)

// ErrorKind classifies a store failure for logging and response mapping.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidID
	KindNotFound
	KindConnection
	KindStore
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidID:
		return "invalid_id"
	case KindNotFound:
		return "not_found"
	case KindConnection:
		return "connection"
	default:
		return "store"
	}
}

func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidID):
		return KindInvalidID
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConnection):
		return KindConnection
	default:
		return KindStore
	}
}

// ParseID converts a path parameter into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q", ErrInvalidID, id)
	}
	return oid, nil
}
