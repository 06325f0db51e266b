package http

import (
	"context"
	"net/http"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
	"github.com/go-chi/chi/v5"
)

type DashboardService interface {
	Dashboard(ctx context.Context, sellerID string) (domain.Dashboard, error)
}

type DashboardHandler struct {
	dashboards DashboardService
}

func NewDashboardHandler(dashboards DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// GET /store-dashboard/{uid}
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboards.Dashboard(r.Context(), chi.URLParam(r, "uid"))
	respondDashboard(w, r, dashboard, err)
}
