package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Handlers struct {
	Health     *HealthHandler
	Products   *ProductHandler
	Users      *UserHandler
	Ratings    *RatingHandler
	Categories *CategoryHandler
	Cart       *CartHandler
	Dashboard  *DashboardHandler
}

func NewRouter(h Handlers, maxBodySize int64) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.RequestSize(maxBodySize))

	r.Get("/", h.Health.Check)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.Products.List)
		r.Post("/", h.Products.Create)
		r.Get("/user/{uid}", h.Products.ListByUser)
		r.Patch("/toggle/{id}", h.Products.ToggleStock)
		r.Get("/{id}", h.Products.Get)
		r.Put("/{id}", h.Products.Update)
		r.Delete("/{id}", h.Products.Delete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.Users.List)
		r.Post("/", h.Users.Create)
	})

	r.Route("/ratings", func(r chi.Router) {
		r.Get("/product/{id}", h.Ratings.ListByProduct)
		r.Post("/", h.Ratings.Create)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.Categories.List)
		r.Post("/", h.Categories.Create)
		r.Get("/{id}", h.Categories.Get)
		r.Put("/{id}", h.Categories.Update)
		r.Delete("/{id}", h.Categories.Delete)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Post("/add", h.Cart.AddItem)
		r.Get("/{uid}", h.Cart.GetItems)
	})

	r.Get("/store-dashboard/{uid}", h.Dashboard.Get)

	return otelhttp.NewHandler(r, "producthub")
}
