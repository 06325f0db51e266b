package service

import (
	"context"
	"log"
	"time"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/events"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductService struct {
	repo      repository.ProductRepository
	publisher events.Publisher
	now       func() time.Time
}

func NewProductService(repo repository.ProductRepository, publisher events.Publisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) ListByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.Get(ctx, id)
}

// Create stores body as a new in-stock product stamped with the current time.
func (s *ProductService) Create(ctx context.Context, body domain.Document) (primitive.ObjectID, error) {
	product := domain.NewProduct(body, s.now().UTC())
	id, err := s.repo.Create(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}

	publish(ctx, s.publisher, events.New(events.ProductCreated, id.Hex(), product.Extra))
	return id, nil
}

func (s *ProductService) Update(ctx context.Context, id string, fields domain.Document) (bool, error) {
	modified, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return false, err
	}
	if modified {
		publish(ctx, s.publisher, events.New(events.ProductUpdated, id, fields.Without("_id")))
	}
	return modified, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		publish(ctx, s.publisher, events.New(events.ProductDeleted, id, nil))
	}
	return deleted, nil
}

func (s *ProductService) ToggleStock(ctx context.Context, id string) error {
	if err := s.repo.ToggleStock(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.publisher, events.New(events.ProductStockToggled, id, nil))
	return nil
}

func publish(ctx context.Context, publisher events.Publisher, event events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		log.Printf("event publish error: %v \n", err)
	}
}
