package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type productRepository struct {
	conn *Connector
}

func NewProductRepository(conn *Connector) ProductRepository {
	return &productRepository{conn: conn}
}

func (r *productRepository) products(ctx context.Context) (*mongo.Collection, error) {
	cols, err := r.conn.Collections(ctx)
	if err != nil {
		return nil, err
	}
	return cols.Products, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	coll, err := r.products(ctx)
	if err != nil {
		return nil, err
	}
	return findAll[domain.Product](ctx, coll, bson.M{})
}

func (r *productRepository) ListByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	coll, err := r.products(ctx)
	if err != nil {
		return nil, err
	}
	return findAll[domain.Product](ctx, coll, bson.M{"userId": userID})
}

func (r *productRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	coll, err := r.products(ctx)
	if err != nil {
		return 0, err
	}

	n, err := coll.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.products(ctx)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product domain.Product) (primitive.ObjectID, error) {
	coll, err := r.products(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertOne(ctx, coll, product)
}

func (r *productRepository) Update(ctx context.Context, id string, fields domain.Document) (bool, error) {
	oid, err := ParseID(id)
	if err != nil {
		return false, err
	}
	coll, err := r.products(ctx)
	if err != nil {
		return false, err
	}

	fields = domain.ProductUpdate(fields.Without("_id"))
	if len(fields) == 0 {
		return false, nil
	}

	res, err := coll.UpdateByID(ctx, oid, setFields(fields))
	if err != nil {
		return false, fmt.Errorf("failed to update product: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := ParseID(id)
	if err != nil {
		return false, err
	}
	coll, err := r.products(ctx)
	if err != nil {
		return false, err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete product: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// ToggleStock flips inStock server-side in a single pipeline update, so two
// toggles always cancel out.
func (r *productRepository) ToggleStock(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	coll, err := r.products(ctx)
	if err != nil {
		return err
	}

	flip := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "inStock", Value: bson.D{{Key: "$not", Value: bson.A{"$inStock"}}}},
		}}},
	}
	res, err := coll.UpdateByID(ctx, oid, flip)
	if err != nil {
		return fmt.Errorf("failed to toggle stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return nil
}
