package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("server selection timeout")

type ProductServiceMock struct {
	products []domain.Product
	product  *domain.Product
	id       primitive.ObjectID
	ok       bool
	err      error

	lastBody   domain.Document
	lastID     string
	lastUserID string
}

func (m *ProductServiceMock) List(context.Context) ([]domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *ProductServiceMock) ListByUser(_ context.Context, userID string) ([]domain.Product, error) {
	m.lastUserID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *ProductServiceMock) Get(_ context.Context, id string) (*domain.Product, error) {
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.product, nil
}

func (m *ProductServiceMock) Create(_ context.Context, body domain.Document) (primitive.ObjectID, error) {
	m.lastBody = body
	return m.id, m.err
}

func (m *ProductServiceMock) Update(_ context.Context, id string, fields domain.Document) (bool, error) {
	m.lastID, m.lastBody = id, fields
	return m.ok, m.err
}

func (m *ProductServiceMock) Delete(_ context.Context, id string) (bool, error) {
	m.lastID = id
	return m.ok, m.err
}

func (m *ProductServiceMock) ToggleStock(_ context.Context, id string) error {
	m.lastID = id
	return m.err
}

type UserRepositoryMock struct {
	users []domain.Document
	id    primitive.ObjectID
	err   error
}

func (m *UserRepositoryMock) List(context.Context) ([]domain.Document, error) {
	return m.users, m.err
}

func (m *UserRepositoryMock) Create(context.Context, domain.Document) (primitive.ObjectID, error) {
	return m.id, m.err
}

type RatingRepositoryMock struct {
	ratings     []domain.Rating
	err         error
	lastProduct string
}

func (m *RatingRepositoryMock) ListByProduct(_ context.Context, productID string) ([]domain.Rating, error) {
	m.lastProduct = productID
	return m.ratings, m.err
}

func (m *RatingRepositoryMock) ListBySeller(context.Context, string) ([]domain.Rating, error) {
	return m.ratings, m.err
}

func (m *RatingRepositoryMock) Create(context.Context, domain.Document) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), m.err
}

type CategoryServiceMock struct {
	categories []domain.Document
	category   domain.Document
	err        error
}

func (m *CategoryServiceMock) List(context.Context) ([]domain.Document, error) {
	return m.categories, m.err
}

func (m *CategoryServiceMock) Get(context.Context, string) (domain.Document, error) {
	return m.category, m.err
}

func (m *CategoryServiceMock) Create(context.Context, domain.Document) error { return m.err }

func (m *CategoryServiceMock) Update(context.Context, string, domain.Document) error { return m.err }

func (m *CategoryServiceMock) Delete(context.Context, string) error { return m.err }

type CartServiceMock struct {
	items []domain.CartItem
	err   error

	addedUser    string
	addedProduct string
}

func (m *CartServiceMock) GetItems(context.Context, string) ([]domain.CartItem, error) {
	return m.items, m.err
}

func (m *CartServiceMock) AddItem(_ context.Context, userID, productID string) error {
	m.addedUser, m.addedProduct = userID, productID
	return m.err
}

type DashboardServiceMock struct {
	dashboard domain.Dashboard
	err       error
}

func (m *DashboardServiceMock) Dashboard(context.Context, string) (domain.Dashboard, error) {
	return m.dashboard, m.err
}

type PingerMock struct {
	err error
}

func (m PingerMock) Ping(context.Context) error { return m.err }

type mocks struct {
	pinger     PingerMock
	products   *ProductServiceMock
	users      *UserRepositoryMock
	ratings    *RatingRepositoryMock
	categories *CategoryServiceMock
	cart       *CartServiceMock
	dashboard  *DashboardServiceMock
}

func newMocks() *mocks {
	return &mocks{
		products:   &ProductServiceMock{},
		users:      &UserRepositoryMock{},
		ratings:    &RatingRepositoryMock{},
		categories: &CategoryServiceMock{},
		cart:       &CartServiceMock{},
		dashboard:  &DashboardServiceMock{},
	}
}

func (m *mocks) router() http.Handler {
	return NewRouter(Handlers{
		Health:     NewHealthHandler(m.pinger),
		Products:   NewProductHandler(m.products),
		Users:      NewUserHandler(m.users),
		Ratings:    NewRatingHandler(m.ratings),
		Categories: NewCategoryHandler(m.categories),
		Cart:       NewCartHandler(m.cart),
		Dashboard:  NewDashboardHandler(m.dashboard),
	}, 1<<20)
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, path, nil)
	} else {
		request = httptest.NewRequest(method, path, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, request)
	return recorder
}
