package http

import (
	"net/http"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/repository"
	"github.com/go-chi/chi/v5"
)

type RatingHandler struct {
	ratings repository.RatingRepository
}

func NewRatingHandler(ratings repository.RatingRepository) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

// GET /ratings/product/{id}
func (h *RatingHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.ratings.ListByProduct(r.Context(), chi.URLParam(r, "id"))
	respondList(w, r, "list product ratings", ratings, err)
}

// POST /ratings
func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeDocument(r)
	if err != nil {
		respondMutation(w, r, "create rating", false, err)
		return
	}

	_, err = h.ratings.Create(r.Context(), body)
	respondMutation(w, r, "create rating", true, err)
}
