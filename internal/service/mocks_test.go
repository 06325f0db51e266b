package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/cache"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/events"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockCartRepository keeps carts in memory, keyed by user.
type mockCartRepository struct {
	m      sync.RWMutex
	carts  map[string]*domain.Cart
	err    error
	gets   int
	writes int
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{carts: map[string]*domain.Cart{}}
}

func (m *mockCartRepository) GetCart(_ context.Context, userID string) (*domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.gets++
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	cp := *cart
	cp.Items = append([]domain.CartItem(nil), cart.Items...)
	return &cp, nil
}

func (m *mockCartRepository) CreateCart(_ context.Context, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.writes++
	m.carts[cart.UserID] = cart
	return nil
}

func (m *mockCartRepository) ReplaceItems(_ context.Context, userID string, items []domain.CartItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return repository.ErrCartNotFound
	}
	m.writes++
	cart.Items = items
	return nil
}

// pausingCartRepository holds the first GetCart call after it has read the
// store, until release is closed.
type pausingCartRepository struct {
	*mockCartRepository
	paused  atomic.Bool
	reached chan struct{}
	release chan struct{}
}

func newPausingCartRepository() *pausingCartRepository {
	return &pausingCartRepository{
		mockCartRepository: newMockCartRepository(),
		reached:            make(chan struct{}),
		release:            make(chan struct{}),
	}
}

func (m *pausingCartRepository) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := m.mockCartRepository.GetCart(ctx, userID)
	if m.paused.CompareAndSwap(false, true) {
		close(m.reached)
		<-m.release
	}
	return cart, err
}

type mockCache struct {
	m    sync.RWMutex
	cart *domain.Cart
	err  error
}

func (m *mockCache) Get(context.Context, string) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.cart == nil {
		return nil, cache.ErrCacheMiss
	}
	return m.cart, nil
}

func (m *mockCache) Set(_ context.Context, _ string, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = cart
	return m.err
}

func (m *mockCache) Delete(context.Context, string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = nil
	return m.err
}

func (m *mockCache) getCart() *domain.Cart {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.cart
}

type mockProductRepository struct {
	created  []domain.Product
	modified bool
	deleted  bool
	count    int64
	err      error
}

func (m *mockProductRepository) List(context.Context) ([]domain.Product, error) {
	return m.created, m.err
}

func (m *mockProductRepository) ListByUser(_ context.Context, userID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.created {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, m.err
}

func (m *mockProductRepository) CountByUser(context.Context, string) (int64, error) {
	return m.count, m.err
}

func (m *mockProductRepository) Get(context.Context, string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return nil, repository.ErrNotFound
}

func (m *mockProductRepository) Create(_ context.Context, p domain.Product) (primitive.ObjectID, error) {
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	m.created = append(m.created, p)
	return primitive.NewObjectID(), nil
}

func (m *mockProductRepository) Update(context.Context, string, domain.Document) (bool, error) {
	return m.modified, m.err
}

func (m *mockProductRepository) Delete(context.Context, string) (bool, error) {
	return m.deleted, m.err
}

func (m *mockProductRepository) ToggleStock(context.Context, string) error {
	return m.err
}

type mockRatingRepository struct {
	ratings []domain.Rating
	err     error
}

func (m *mockRatingRepository) ListByProduct(context.Context, string) ([]domain.Rating, error) {
	return m.ratings, m.err
}

func (m *mockRatingRepository) ListBySeller(context.Context, string) ([]domain.Rating, error) {
	return m.ratings, m.err
}

func (m *mockRatingRepository) Create(context.Context, domain.Document) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), m.err
}

type mockCategoryRepository struct {
	err error
}

func (m *mockCategoryRepository) List(context.Context) ([]domain.Document, error) {
	return []domain.Document{}, m.err
}

func (m *mockCategoryRepository) Get(context.Context, string) (domain.Document, error) {
	return domain.Document{}, m.err
}

func (m *mockCategoryRepository) Create(context.Context, domain.Document) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), m.err
}

func (m *mockCategoryRepository) Update(context.Context, string, domain.Document) error {
	return m.err
}

func (m *mockCategoryRepository) Delete(context.Context, string) error {
	return m.err
}

type mockPublisher struct {
	m      sync.Mutex
	events []events.Event
	err    error
}

func (p *mockPublisher) Publish(_ context.Context, e events.Event) error {
	p.m.Lock()
	defer p.m.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *mockPublisher) Close() error { return nil }

func (p *mockPublisher) types() []string {
	p.m.Lock()
	defer p.m.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
