package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/cache"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/repository"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

const generationStripes = 256

type CartService struct {
	repo  repository.CartRepository
	cache cache.CartCache
	sfg   singleflight.Group // Prevents cache stampede

	// gens counts cart writes per stripe of users. A read fills the cache
	// only if no write hit its stripe since the read started; genMu also
	// orders fills against invalidations.
	genMu sync.Mutex
	gens  [generationStripes]uint64
}

func NewCartService(repo repository.CartRepository, cache cache.CartCache) *CartService {
	return &CartService{
		repo:  repo,
		cache: cache,
	}
}

// GetItems returns the user's cart lines, or an empty slice when the user
// has no cart yet.
func (s *CartService) GetItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		cart, err := s.cache.Get(ctx, userID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		gen := s.generation(userID)
		cart, errGet := s.repo.GetCart(ctx, userID)
		if errors.Is(errGet, repository.ErrCartNotFound) {
			return &domain.Cart{UserID: userID}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		s.fillCache(ctx, userID, gen, cart)
		return cart, nil
	})

	if err != nil {
		return nil, err
	}

	items := v.(*domain.Cart).Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

// AddItem puts one unit of productID into the user's cart, creating the cart
// on first use.
func (s *CartService) AddItem(ctx context.Context, userID, productID string) error {
	if userID == "" || productID == "" {
		return ErrMissingCartField
	}

	cart, errGet := s.repo.GetCart(ctx, userID)
	switch {
	case errors.Is(errGet, repository.ErrCartNotFound):
		if err := s.repo.CreateCart(ctx, domain.NewCart(userID, productID)); err != nil {
			log.Printf("repo create cart error: %v \n", err)
			return err
		}
	case errGet != nil:
		log.Printf("repo get cart error: %v \n", errGet)
		return errGet
	default:
		// Read-modify-write with no guard: two concurrent adds for one user can
		// lose an increment. An atomic upsert with $inc on the matching line
		// would close this gap.
		cart.AddProduct(productID)
		if err := s.repo.ReplaceItems(ctx, userID, cart.Items); err != nil {
			log.Printf("repo replace items error: %v \n", err)
			return err
		}
	}

	invalidateCache(s, userID)
	return nil
}

func stripe(userID string) uint64 {
	return xxhash.Sum64String(userID) % generationStripes
}

func (s *CartService) generation(userID string) uint64 {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.gens[stripe(userID)]
}

// fillCache stores cart unless a write for the same stripe happened after
// gen was taken; the cart may already be stale then.
func (s *CartService) fillCache(ctx context.Context, userID string, gen uint64, cart *domain.Cart) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	if s.gens[stripe(userID)] != gen {
		return
	}
	if errSet := s.cache.Set(ctx, userID, cart); errSet != nil {
		log.Printf("cache set error: %v \n", errSet)
	}
}

func invalidateCache(s *CartService, userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s.genMu.Lock()
	defer s.genMu.Unlock()
	s.gens[stripe(userID)]++
	errInvalidate := s.cache.Delete(ctx, userID)
	if errInvalidate != nil {
		log.Printf("cache invalidate error: %v \n", errInvalidate)
	}
}
