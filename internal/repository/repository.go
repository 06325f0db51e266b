package repository

import (
	"context"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository defines product data operations. Get and ToggleStock
// return ErrNotFound for a missing document.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Product, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, fields domain.Document) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ToggleStock(ctx context.Context, id string) error
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.Document, error)
	Create(ctx context.Context, user domain.Document) (primitive.ObjectID, error)
}

type RatingRepository interface {
	ListByProduct(ctx context.Context, productID string) ([]domain.Rating, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Rating, error)
	Create(ctx context.Context, rating domain.Document) (primitive.ObjectID, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Document, error)
	Get(ctx context.Context, id string) (domain.Document, error)
	Create(ctx context.Context, category domain.Document) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, fields domain.Document) error
	Delete(ctx context.Context, id string) error
}

// CartRepository defines the interface for cart data operations
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	CreateCart(ctx context.Context, cart *domain.Cart) error
	ReplaceItems(ctx context.Context, userID string, items []domain.CartItem) error
}
