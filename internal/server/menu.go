package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/models"
)

func (h *Handler) handleListMenuCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListMenuCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []models.MenuCategory{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) handleCreateMenuCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMenuCategoryRequest
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

	category, err := h.store.CreateMenuCategory(r.Context(), models.MenuCategory{
		ID:       uuid.New(),
		Name:     req.Name,
		Icon:     req.Icon,
		Order:    req.Order,
		IsActive: isActive,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

// handleListMenuItems lists items joined with their categories, optionally
// filtered by ?categoryId.
func (h *Handler) handleListMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var items []models.MenuItem
	var err error
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		categoryID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			h.writeError(w, r, fmt.Errorf("%w: invalid categoryId", errs.ErrValidation))
			return
		}
		items, err = h.store.ListMenuItemsByCategory(ctx, categoryID)
	} else {
		items, err = h.store.ListMenuItems(ctx)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	categories, err := h.store.ListMenuCategories(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	byID := make(map[uuid.UUID]models.MenuCategory, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	result := make([]models.MenuItemWithCategory, 0, len(items))
	for _, item := range items {
		result = append(result, models.MenuItemWithCategory{
			MenuItem: item,
			Category: byID[item.CategoryID],
		})
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMenuItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, err)
		return
	}

	// Reject unknown categories up front so the menu never references a
	// category that does not exist.
	if _, err := h.categoryExists(r, req.CategoryID); err != nil {
		h.writeError(w, r, err)
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item, err := h.store.CreateMenuItem(r.Context(), models.MenuItem{
		ID:              uuid.New(),
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Image:           req.Image,
		IsAvailable:     isAvailable,
		PreparationTime: req.PreparationTime,
		Order:           req.Order,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdateMenuItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, err)
		return
	}

	item, err := h.store.GetMenuItem(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}
	if req.Order != nil {
		item.Order = *req.Order
	}

	updated, err := h.store.UpdateMenuItem(r.Context(), item)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) categoryExists(r *http.Request, id uuid.UUID) (models.MenuCategory, error) {
	categories, err := h.store.ListMenuCategories(r.Context())
	if err != nil {
		return models.MenuCategory{}, err
	}
	for _, category := range categories {
		if category.ID == id {
			return category, nil
		}
	}
	return models.MenuCategory{}, fmt.Errorf("%w: menu category %s", errs.ErrNotFound, id)
}
