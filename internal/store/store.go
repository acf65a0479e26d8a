// Package store defines the repository contracts the order engine and
// stats aggregator depend on. Implementations live in store/memory and
// store/postgres; the engine never sees a concrete collection type.
package store

import (
	"context"

	"github.com/google/uuid"

	"restaurant-pos/internal/models"
)

// StaffRepository is the staff identity store. GetStaffByUsername backs
// the authentication collaborator.
type StaffRepository interface {
	GetStaff(ctx context.Context, id uuid.UUID) (models.Staff, error)
	GetStaffByUsername(ctx context.Context, username string) (models.Staff, error)
	ListStaff(ctx context.Context) ([]models.Staff, error)
	CreateStaff(ctx context.Context, staff models.Staff) (models.Staff, error)
	UpdateStaff(ctx context.Context, staff models.Staff) (models.Staff, error)
}

// CatalogRepository stores menu categories and items. Listings come back
// sorted by their explicit display order.
type CatalogRepository interface {
	ListMenuCategories(ctx context.Context) ([]models.MenuCategory, error)
	CreateMenuCategory(ctx context.Context, category models.MenuCategory) (models.MenuCategory, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (models.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	ListMenuItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
}

// TableRepository stores dining tables, listed by table number.
type TableRepository interface {
	GetTable(ctx context.Context, id uuid.UUID) (models.Table, error)
	ListTables(ctx context.Context) ([]models.Table, error)
	CreateTable(ctx context.Context, table models.Table) (models.Table, error)
	UpdateTable(ctx context.Context, table models.Table) (models.Table, error)
}

// OrderRepository stores orders and their exclusively-owned items.
// NextOrderNumber allocates from a single monotonic counter: numbers are
// never reused, even for orders that later get cancelled.
type OrderRepository interface {
	GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListActiveOrders(ctx context.Context) ([]models.Order, error)
	ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	GetOrderItem(ctx context.Context, id uuid.UUID) (models.OrderItem, error)
	CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error)
	UpdateOrder(ctx context.Context, order models.Order) (models.Order, error)
	UpdateOrderItem(ctx context.Context, item models.OrderItem) (models.OrderItem, error)
	NextOrderNumber(ctx context.Context) (int64, error)
}

// Store aggregates the repositories and adds a unit-of-work boundary.
// Updates are whole-record replacements guarded by a revision counter:
// writing an entity whose stored revision no longer matches returns
// errs.ErrConflict.
type Store interface {
	StaffRepository
	CatalogRepository
	TableRepository
	OrderRepository

	// WithinTx runs fn against a transactional view of the store. Either
	// every write inside fn commits or none do; this is what makes the
	// order/table cascades atomic. Nested calls join the ambient
	// transaction.
	WithinTx(ctx context.Context, fn func(Store) error) error
}
