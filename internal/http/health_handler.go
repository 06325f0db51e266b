package http

import (
	"context"
	"net/http"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check is the liveness route. It also opens the store connection on the
// first call.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		logFailure(r, "liveness", err)
		respondJSON(w, http.StatusInternalServerError, StatusResponse{Status: "error"})
		return
	}
	respondJSON(w, http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: "ProductHub server is running",
	})
}
