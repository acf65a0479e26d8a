package models

import (
	"fmt"

	"github.com/google/uuid"

	"restaurant-pos/internal/errs"
)

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the login request
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("%w: username is required", errs.ErrValidation)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password is required", errs.ErrValidation)
	}
	return nil
}

// CreateOrderItemRequest is a single cart line in an order request.
type CreateOrderItemRequest struct {
	MenuItemID    uuid.UUID `json:"menuItemId"`
	Quantity      int       `json:"quantity"`
	Modifications string    `json:"modifications,omitempty"`
}

// CreateOrderRequest is the POST /orders payload.
type CreateOrderRequest struct {
	TableID      *uuid.UUID               `json:"tableId,omitempty"`
	StaffID      uuid.UUID                `json:"staffId"`
	CustomerName string                   `json:"customerName,omitempty"`
	Notes        string                   `json:"notes,omitempty"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// Validate validates the create order request
func (r *CreateOrderRequest) Validate() error {
	if r.StaffID == uuid.Nil {
		return fmt.Errorf("%w: staffId is required", errs.ErrValidation)
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("%w: items array cannot be empty", errs.ErrValidation)
	}
	for i, item := range r.Items {
		if item.MenuItemID == uuid.Nil {
			return fmt.Errorf("%w: items[%d].menuItemId is required", errs.ErrValidation, i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: items[%d].quantity must be at least 1", errs.ErrValidation, i)
		}
	}
	return nil
}

// UpdateOrderRequest enumerates the only order fields mutable after
// creation. Order number, items and totals are never patchable.
type UpdateOrderRequest struct {
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentStatus *PaymentStatus `json:"paymentStatus,omitempty"`
	CustomerName  *string        `json:"customerName,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	Revision      *int64         `json:"revision,omitempty"`
}

// Validate validates the update order request
func (r *UpdateOrderRequest) Validate() error {
	if r.PaymentMethod == nil && r.PaymentStatus == nil && r.CustomerName == nil && r.Notes == nil {
		return fmt.Errorf("%w: no updatable fields provided", errs.ErrValidation)
	}
	if r.PaymentMethod != nil && !ValidPaymentMethod(*r.PaymentMethod) {
		return fmt.Errorf("%w: invalid payment method %q", errs.ErrValidation, *r.PaymentMethod)
	}
	if r.PaymentStatus != nil && !ValidPaymentStatus(*r.PaymentStatus) {
		return fmt.Errorf("%w: invalid payment status %q", errs.ErrValidation, *r.PaymentStatus)
	}
	return nil
}

// UpdateOrderStatusRequest is the PATCH /orders/{id}/status payload.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// Validate validates the status update request
func (r *UpdateOrderStatusRequest) Validate() error {
	if !ValidOrderStatus(r.Status) {
		return fmt.Errorf("%w: invalid order status %q", errs.ErrValidation, r.Status)
	}
	return nil
}

// UpdateOrderItemRequest is the PATCH /orders/items/{id} payload used by
// the kitchen to track individual lines.
type UpdateOrderItemRequest struct {
	Status OrderItemStatus `json:"status"`
}

// Validate validates the order item update request
func (r *UpdateOrderItemRequest) Validate() error {
	if !ValidOrderItemStatus(r.Status) {
		return fmt.Errorf("%w: invalid order item status %q", errs.ErrValidation, r.Status)
	}
	return nil
}

// UpdateTableRequest is the PATCH /tables/{id} payload (manual override of
// table state by staff).
type UpdateTableRequest struct {
	Status *TableStatus `json:"status,omitempty"`
	Seats  *int         `json:"seats,omitempty"`
	X      *int         `json:"x,omitempty"`
	Y      *int         `json:"y,omitempty"`
}

// Validate validates the table update request
func (r *UpdateTableRequest) Validate() error {
	if r.Status == nil && r.Seats == nil && r.X == nil && r.Y == nil {
		return fmt.Errorf("%w: no updatable fields provided", errs.ErrValidation)
	}
	if r.Status != nil && !ValidTableStatus(*r.Status) {
		return fmt.Errorf("%w: invalid table status %q", errs.ErrValidation, *r.Status)
	}
	if r.Seats != nil && *r.Seats < 1 {
		return fmt.Errorf("%w: seats must be at least 1", errs.ErrValidation)
	}
	return nil
}

// CreateTableRequest is the POST /tables payload.
type CreateTableRequest struct {
	Number int         `json:"number"`
	Seats  int         `json:"seats"`
	Status TableStatus `json:"status,omitempty"`
	X      int         `json:"x"`
	Y      int         `json:"y"`
}

// Validate validates the create table request
func (r *CreateTableRequest) Validate() error {
	if r.Number < 1 {
		return fmt.Errorf("%w: table number must be at least 1", errs.ErrValidation)
	}
	if r.Seats < 1 {
		return fmt.Errorf("%w: seats must be at least 1", errs.ErrValidation)
	}
	if r.Status != "" && !ValidTableStatus(r.Status) {
		return fmt.Errorf("%w: invalid table status %q", errs.ErrValidation, r.Status)
	}
	return nil
}

// CreateMenuItemRequest is the POST /menu/items payload.
type CreateMenuItemRequest struct {
	CategoryID      uuid.UUID `json:"categoryId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           Money     `json:"price"`
	Image           string    `json:"image"`
	IsAvailable     *bool     `json:"isAvailable,omitempty"`
	PreparationTime int       `json:"preparationTime"`
	Order           int       `json:"order"`
}

// Validate validates the create menu item request
func (r *CreateMenuItemRequest) Validate() error {
	if r.CategoryID == uuid.Nil {
		return fmt.Errorf("%w: categoryId is required", errs.ErrValidation)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", errs.ErrValidation)
	}
	return nil
}

// UpdateMenuItemRequest is the PATCH /menu/items/{id} payload.
type UpdateMenuItemRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Price           *Money  `json:"price,omitempty"`
	Image           *string `json:"image,omitempty"`
	IsAvailable     *bool   `json:"isAvailable,omitempty"`
	PreparationTime *int    `json:"preparationTime,omitempty"`
	Order           *int    `json:"order,omitempty"`
}

// Validate validates the menu item update request
func (r *UpdateMenuItemRequest) Validate() error {
	if r.Name == nil && r.Description == nil && r.Price == nil && r.Image == nil &&
		r.IsAvailable == nil && r.PreparationTime == nil && r.Order == nil {
		return fmt.Errorf("%w: no updatable fields provided", errs.ErrValidation)
	}
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", errs.ErrValidation)
	}
	if r.Price != nil && r.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", errs.ErrValidation)
	}
	return nil
}

// CreateMenuCategoryRequest is the POST /menu/categories payload.
type CreateMenuCategoryRequest struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// Validate validates the create menu category request
func (r *CreateMenuCategoryRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	return nil
}

// CreateStaffRequest is the POST /staff provisioning payload.
type CreateStaffRequest struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Name     string    `json:"name"`
	Role     StaffRole `json:"role"`
	IsActive *bool     `json:"isActive,omitempty"`
}

// Validate validates the create staff request
func (r *CreateStaffRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("%w: username is required", errs.ErrValidation)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password is required", errs.ErrValidation)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	if !ValidStaffRole(r.Role) {
		return fmt.Errorf("%w: invalid staff role %q", errs.ErrValidation, r.Role)
	}
	return nil
}
