package http

import (
	"context"
	"net/http"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/go-chi/chi/v5"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.Document, error)
	Get(ctx context.Context, id string) (domain.Document, error)
	Create(ctx context.Context, body domain.Document) error
	Update(ctx context.Context, id string, fields domain.Document) error
	Delete(ctx context.Context, id string) error
}

type CategoryHandler struct {
	categories CategoryService
}

func NewCategoryHandler(categories CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	respondList(w, r, "list categories", categories, err)
}

// GET /categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.Get(r.Context(), chi.URLParam(r, "id"))
	respondDocument(w, r, "get category", category, err)
}

// POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeDocument(r)
	if err == nil {
		err = h.categories.Create(r.Context(), body)
	}
	respondMutation(w, r, "create category", true, err)
}

// PUT /categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeDocument(r)
	if err == nil {
		err = h.categories.Update(r.Context(), chi.URLParam(r, "id"), fields)
	}
	respondMutation(w, r, "update category", true, err)
}

// DELETE /categories/{id} reports success even when nothing was deleted,
// unlike product deletion.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.categories.Delete(r.Context(), chi.URLParam(r, "id"))
	respondMutation(w, r, "delete category", true, err)
}
