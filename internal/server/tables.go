package server

import (
	"net/http"

	"github.com/google/uuid"

	"restaurant-pos/internal/models"
)

func (h *Handler) handleListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.store.ListTables(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if tables == nil {
		tables = []models.Table{}
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) handleCreateTable(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTableRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, err)
		return
	}

	status := req.Status
	if status == "" {
		status = models.TableAvailable
	}

	table, err := h.store.CreateTable(r.Context(), models.Table{
		ID:     uuid.New(),
		Number: req.Number,
		Seats:  req.Seats,
		Status: status,
		X:      req.X,
		Y:      req.Y,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) handleUpdateTable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdateTableRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, err)
		return
	}

	table, err := h.store.GetTable(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if req.Status != nil {
		table.Status = *req.Status
	}
	if req.Seats != nil {
		table.Seats = *req.Seats
	}
	if req.X != nil {
		table.X = *req.X
	}
	if req.Y != nil {
		table.Y = *req.Y
	}

	updated, err := h.store.UpdateTable(r.Context(), table)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
