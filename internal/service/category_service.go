package service

import (
	"context"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/events"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/repository"
)

type CategoryService struct {
	repo      repository.CategoryRepository
	publisher events.Publisher
}

func NewCategoryService(repo repository.CategoryRepository, publisher events.Publisher) *CategoryService {
	return &CategoryService{repo: repo, publisher: publisher}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Document, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (domain.Document, error) {
	return s.repo.Get(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, body domain.Document) error {
	id, err := s.repo.Create(ctx, body)
	if err != nil {
		return err
	}
	publish(ctx, s.publisher, events.New(events.CategoryCreated, id.Hex(), body.Without("_id")))
	return nil
}

func (s *CategoryService) Update(ctx context.Context, id string, fields domain.Document) error {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return err
	}
	publish(ctx, s.publisher, events.New(events.CategoryUpdated, id, fields.Without("_id")))
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.publisher, events.New(events.CategoryDeleted, id, nil))
	return nil
}
