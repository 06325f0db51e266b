package service

import (
	"context"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/repository"
)

type DashboardService struct {
	products repository.ProductRepository
	ratings  repository.RatingRepository
}

func NewDashboardService(products repository.ProductRepository, ratings repository.RatingRepository) *DashboardService {
	return &DashboardService{products: products, ratings: ratings}
}

// Dashboard aggregates a seller's products and ratings. Orders and earnings
// are placeholders and always zero.
func (s *DashboardService) Dashboard(ctx context.Context, sellerID string) (domain.Dashboard, error) {
	total, err := s.products.CountByUser(ctx, sellerID)
	if err != nil {
		return domain.EmptyDashboard(), err
	}

	ratings, err := s.ratings.ListBySeller(ctx, sellerID)
	if err != nil {
		return domain.EmptyDashboard(), err
	}

	dashboard := domain.EmptyDashboard()
	dashboard.TotalProducts = total
	if ratings != nil {
		dashboard.Ratings = ratings
	}
	return dashboard, nil
}
