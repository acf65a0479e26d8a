package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/models"
)

type loginStaff struct {
	ID       uuid.UUID        `json:"id"`
	Username string           `json:"username"`
	Name     string           `json:"name"`
	Role     models.StaffRole `json:"role"`
}

type loginResponse struct {
	Success bool       `json:"success"`
	Staff   loginStaff `json:"staff"`
}

// handleLogin checks the credential against the staff store. Bad
// credentials and inactive accounts are indistinguishable to the caller.
// Demo-grade auth: plaintext compare, no sessions, no lockout.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, err)
		return
	}

	staff, err := h.store.GetStaffByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			h.writeError(w, r, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized))
			return
		}
		h.writeError(w, r, err)
		return
	}

	if staff.Password != req.Password || !staff.IsActive {
		h.writeError(w, r, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized))
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Staff: loginStaff{
			ID:       staff.ID,
			Username: staff.Username,
			Name:     staff.Name,
			Role:     staff.Role,
		},
	})
}
