package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCartRepository struct {
	conn *Connector
}

func NewCartRepository(conn *Connector) CartRepository {
	return &mongoCartRepository{conn: conn}
}

func (m *mongoCartRepository) carts(ctx context.Context) (*mongo.Collection, error) {
	cols, err := m.conn.Collections(ctx)
	if err != nil {
		return nil, err
	}
	return cols.Carts, nil
}

func (m *mongoCartRepository) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	coll, err := m.carts(ctx)
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	err = coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

func (m *mongoCartRepository) CreateCart(ctx context.Context, cart *domain.Cart) error {
	coll, err := m.carts(ctx)
	if err != nil {
		return err
	}

	if _, err := coll.InsertOne(ctx, cart); err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// ReplaceItems overwrites the whole item list of the user's cart.
func (m *mongoCartRepository) ReplaceItems(ctx context.Context, userID string, items []domain.CartItem) error {
	coll, err := m.carts(ctx)
	if err != nil {
		return err
	}

	filter := bson.M{"userId": userID}
	update := bson.M{"$set": bson.M{"items": items}}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update cart items: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrCartNotFound
	}
	return nil
}
