package http

import (
	"net/http"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	respondList(w, r, "list users", users, err)
}

// POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeDocument(r)
	if err != nil {
		respondInsert(w, r, "create user", primitive.NilObjectID, err)
		return
	}

	id, err := h.users.Create(r.Context(), body)
	respondInsert(w, r, "create user", id, err)
}
