package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/repository"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, body domain.Document) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, fields domain.Document) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ToggleStock(ctx context.Context, id string) error
}

type ProductHandler struct {
	products ProductService
}

func NewProductHandler(products ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	respondList(w, r, "list products", products, err)
}

// GET /products/user/{uid}
func (h *ProductHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListByUser(r.Context(), chi.URLParam(r, "uid"))
	respondList(w, r, "list user products", products, err)
}

// GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.Get(r.Context(), chi.URLParam(r, "id"))
	respondDocument(w, r, "get product", product, err)
}

// POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeDocument(r)
	if err != nil {
		respondInsert(w, r, "create product", primitive.NilObjectID, err)
		return
	}

	id, err := h.products.Create(r.Context(), body)
	respondInsert(w, r, "create product", id, err)
}

// PUT /products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeDocument(r)
	if err != nil {
		respondMutation(w, r, "update product", false, err)
		return
	}

	modified, err := h.products.Update(r.Context(), chi.URLParam(r, "id"), fields)
	respondMutation(w, r, "update product", modified, err)
}

// DELETE /products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.products.Delete(r.Context(), chi.URLParam(r, "id"))
	respondMutation(w, r, "delete product", deleted, err)
}

// PATCH /products/toggle/{id}
func (h *ProductHandler) ToggleStock(w http.ResponseWriter, r *http.Request) {
	err := h.products.ToggleStock(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, repository.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, MutationResponse{Success: false})
		return
	}
	respondMutation(w, r, "toggle stock", true, err)
}
