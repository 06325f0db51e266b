package repository

import (
	"context"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ratingRepository struct {
	conn *Connector
}

func NewRatingRepository(conn *Connector) RatingRepository {
	return &ratingRepository{conn: conn}
}

func (r *ratingRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Rating, error) {
	return r.find(ctx, bson.M{"productId": productID})
}

func (r *ratingRepository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Rating, error) {
	return r.find(ctx, bson.M{"sellerId": sellerID})
}

func (r *ratingRepository) find(ctx context.Context, filter bson.M) ([]domain.Rating, error) {
	cols, err := r.conn.Collections(ctx)
	if err != nil {
		return nil, err
	}
	return findAll[domain.Rating](ctx, cols.Ratings, filter)
}

func (r *ratingRepository) Create(ctx context.Context, rating domain.Document) (primitive.ObjectID, error) {
	cols, err := r.conn.Collections(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertOne(ctx, cols.Ratings, rating.Without("_id"))
}
