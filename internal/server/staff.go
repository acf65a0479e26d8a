package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"restaurant-pos/internal/models"
)

func (h *Handler) handleListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.store.ListStaff(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if staff == nil {
		staff = []models.Staff{}
	}
	writeJSON(w, http.StatusOK, staff)
}

func (h *Handler) handleCreateStaff(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	staff, err := h.store.CreateStaff(r.Context(), models.Staff{
		ID:        uuid.New(),
		Username:  req.Username,
		Password:  req.Password,
		Name:      req.Name,
		Role:      req.Role,
		IsActive:  isActive,
		CreatedAt: time.Now(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, staff)
}
