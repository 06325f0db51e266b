package repository

import (
	"context"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepository struct {
	conn *Connector
}

func NewUserRepository(conn *Connector) UserRepository {
	return &userRepository{conn: conn}
}

func (r *userRepository) List(ctx context.Context) ([]domain.Document, error) {
	cols, err := r.conn.Collections(ctx)
	if err != nil {
		return nil, err
	}
	return findAll[domain.Document](ctx, cols.Users, bson.M{})
}

func (r *userRepository) Create(ctx context.Context, user domain.Document) (primitive.ObjectID, error) {
	cols, err := r.conn.Collections(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertOne(ctx, cols.Users, user.Without("_id"))
}
