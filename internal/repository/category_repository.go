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

type categoryRepository struct {
	conn *Connector
}

func NewCategoryRepository(conn *Connector) CategoryRepository {
	return &categoryRepository{conn: conn}
}

func (r *categoryRepository) categories(ctx context.Context) (*mongo.Collection, error) {
	cols, err := r.conn.Collections(ctx)
	if err != nil {
		return nil, err
	}
	return cols.Categories, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Document, error) {
	coll, err := r.categories(ctx)
	if err != nil {
		return nil, err
	}
	return findAll[domain.Document](ctx, coll, bson.M{})
}

func (r *categoryRepository) Get(ctx context.Context, id string) (domain.Document, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.categories(ctx)
	if err != nil {
		return nil, err
	}

	var category domain.Document
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category domain.Document) (primitive.ObjectID, error) {
	coll, err := r.categories(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertOne(ctx, coll, category.Without("_id"))
}

func (r *categoryRepository) Update(ctx context.Context, id string, fields domain.Document) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	coll, err := r.categories(ctx)
	if err != nil {
		return err
	}

	if _, err := coll.UpdateByID(ctx, oid, setFields(fields)); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// Delete succeeds whether or not the category existed.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	coll, err := r.categories(ctx)
	if err != nil {
		return err
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
