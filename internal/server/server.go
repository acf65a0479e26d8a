// Package server exposes the REST boundary: chi routes, JSON encoding and
// the mapping from domain errors to HTTP status codes.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"restaurant-pos/internal/engine"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/stats"
	"restaurant-pos/internal/store"
)

// Handler holds the collaborators the HTTP layer dispatches into.
type Handler struct {
	store  store.Store
	engine *engine.Engine
	stats  *stats.Aggregator
	logger *logger.Logger
}

// New creates the HTTP handler.
func New(st store.Store, eng *engine.Engine, agg *stats.Aggregator, log *logger.Logger) *Handler {
	return &Handler{
		store:  st,
		engine: eng,
		stats:  agg,
		logger: log,
	}
}

// Routes builds the router. All responses are JSON.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(h.requestLogger)

	r.Get("/health", h.handleHealth)

	r.Post("/auth/login", h.handleLogin)
	r.Get("/stats/daily", h.handleDailyStats)

	r.Route("/menu", func(r chi.Router) {
		r.Get("/categories", h.handleListMenuCategories)
		r.Post("/categories", h.handleCreateMenuCategory)
		r.Get("/items", h.handleListMenuItems)
		r.Post("/items", h.handleCreateMenuItem)
		r.Patch("/items/{id}", h.handleUpdateMenuItem)
	})

	r.Route("/tables", func(r chi.Router) {
		r.Get("/", h.handleListTables)
		r.Post("/", h.handleCreateTable)
		r.Patch("/{id}", h.handleUpdateTable)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.handleListOrders)
		r.Post("/", h.handleCreateOrder)
		r.Patch("/items/{id}", h.handleUpdateOrderItem)
		r.Get("/{id}", h.handleGetOrder)
		r.Patch("/{id}", h.handleUpdateOrder)
		r.Patch("/{id}/status", h.handleUpdateOrderStatus)
	})

	r.Get("/staff", h.handleListStaff)
	r.Post("/staff", h.handleCreateStaff)

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
