package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartService interface {
	GetItems(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddItem(ctx context.Context, userID, productID string) error
}

type CartHandler struct {
	carts CartService
}

func NewCartHandler(carts CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// GET /cart/{uid}
func (h *CartHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.carts.GetItems(r.Context(), chi.URLParam(r, "uid"))
	respondList(w, r, "get cart", items, err)
}

// POST /cart/add accepts userId and productId of any scalar JSON type.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	body, err := decodeDocument(r)
	if err != nil {
		logFailure(r, "add to cart", err)
		respondJSON(w, http.StatusBadRequest, MutationResponse{Success: false})
		return
	}

	err = h.carts.AddItem(r.Context(), body.StringOf("userId"), body.StringOf("productId"))
	if errors.Is(err, service.ErrMissingCartField) {
		respondJSON(w, http.StatusBadRequest, MutationResponse{Success: false})
		return
	}
	respondMutation(w, r, "add to cart", true, err)
}
