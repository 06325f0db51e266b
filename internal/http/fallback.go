package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Every route answers with a fixed shape. Store failures are logged here and
// replaced by the route's default payload; they never reach the caller.

type MutationResponse struct {
	Success bool `json:"success"`
}

type InsertResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId,omitempty"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func logFailure(r *http.Request, op string, err error) {
	log.Printf("[%s] %s failed (%s): %v", middleware.GetReqID(r.Context()), op, repository.KindOf(err), err)
}

// respondList writes items, or an empty array when the lookup failed.
func respondList[T any](w http.ResponseWriter, r *http.Request, op string, items []T, err error) {
	if err != nil {
		logFailure(r, op, err)
		items = nil
	}
	if items == nil {
		items = []T{}
	}
	respondJSON(w, http.StatusOK, items)
}

// respondDocument writes doc, {} when it does not exist, and {} with 400 on
// any other failure, malformed IDs included.
func respondDocument(w http.ResponseWriter, r *http.Request, op string, doc interface{}, err error) {
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, doc)
	case errors.Is(err, repository.ErrNotFound):
		respondJSON(w, http.StatusOK, struct{}{})
	default:
		logFailure(r, op, err)
		respondJSON(w, http.StatusBadRequest, struct{}{})
	}
}

func respondMutation(w http.ResponseWriter, r *http.Request, op string, success bool, err error) {
	if err != nil {
		logFailure(r, op, err)
		respondJSON(w, http.StatusInternalServerError, MutationResponse{Success: false})
		return
	}
	respondJSON(w, http.StatusOK, MutationResponse{Success: success})
}

func respondInsert(w http.ResponseWriter, r *http.Request, op string, id primitive.ObjectID, err error) {
	if err != nil {
		logFailure(r, op, err)
		respondJSON(w, http.StatusInternalServerError, InsertResponse{Success: false})
		return
	}
	respondJSON(w, http.StatusOK, InsertResponse{Success: true, InsertedID: id.Hex()})
}

func respondDashboard(w http.ResponseWriter, r *http.Request, dashboard domain.Dashboard, err error) {
	if err != nil {
		logFailure(r, "store dashboard", err)
		respondJSON(w, http.StatusInternalServerError, domain.EmptyDashboard())
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}
