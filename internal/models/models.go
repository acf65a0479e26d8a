package models

import (
	"time"

	"github.com/google/uuid"
)

// StaffRole represents the role of a staff member
type StaffRole string

const (
	RoleServer  StaffRole = "server"
	RoleManager StaffRole = "manager"
	RoleAdmin   StaffRole = "admin"
	RoleKitchen StaffRole = "kitchen"
)

// TableStatus represents the occupancy state of a dining table
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusPaid      OrderStatus = "paid"
	StatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transition can leave the status.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// OrderItemStatus tracks a single line through the kitchen, independent of
// the parent order's status.
type OrderItemStatus string

const (
	ItemPending   OrderItemStatus = "pending"
	ItemPreparing OrderItemStatus = "preparing"
	ItemReady     OrderItemStatus = "ready"
)

// PaymentMethod represents how an order was settled
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentMobile   PaymentMethod = "mobile"
	PaymentGiftCard PaymentMethod = "gift_card"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Staff represents a staff member who can log in and own orders.
// Password is an opaque credential and never leaves the server.
type Staff struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Role      StaffRole `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	Revision  int64     `json:"revision"`
}

// MenuCategory is static reference data grouping menu items.
type MenuCategory struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	Order    int       `json:"order"`
	IsActive bool      `json:"isActive"`
}

// MenuItem is a sellable item. Price changes never rewrite historical
// order lines; orders snapshot the price at creation.
type MenuItem struct {
	ID              uuid.UUID `json:"id"`
	CategoryID      uuid.UUID `json:"categoryId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           Money     `json:"price"`
	Image           string    `json:"image"`
	IsAvailable     bool      `json:"isAvailable"`
	PreparationTime int       `json:"preparationTime"`
	Order           int       `json:"order"`
	Revision        int64     `json:"revision"`
}

// MenuItemWithCategory joins an item with its category for menu listings.
type MenuItemWithCategory struct {
	MenuItem
	Category MenuCategory `json:"category"`
}

// Table represents a dining table with a fixed number and grid position.
type Table struct {
	ID       uuid.UUID   `json:"id"`
	Number   int         `json:"number"`
	Seats    int         `json:"seats"`
	Status   TableStatus `json:"status"`
	X        int         `json:"x"`
	Y        int         `json:"y"`
	Revision int64       `json:"revision"`
}

// Order is a customer's requested set of menu items plus charges computed
// once at creation. A nil TableID means take-away. Orders are never
// physically deleted; cancelled is a terminal status.
type Order struct {
	ID            uuid.UUID      `json:"id"`
	OrderNumber   int64          `json:"orderNumber"`
	TableID       *uuid.UUID     `json:"tableId,omitempty"`
	StaffID       uuid.UUID      `json:"staffId"`
	CustomerName  string         `json:"customerName,omitempty"`
	Status        OrderStatus    `json:"status"`
	Subtotal      Money          `json:"subtotal"`
	Tax           Money          `json:"tax"`
	ServiceCharge Money          `json:"serviceCharge"`
	Total         Money          `json:"total"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentStatus PaymentStatus  `json:"paymentStatus"`
	Notes         string         `json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Revision      int64          `json:"revision"`
}

// OrderItem is a line on an order. Price is snapshotted from the menu item
// at creation time and immune to later catalog edits.
type OrderItem struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"orderId"`
	MenuItemID    uuid.UUID       `json:"menuItemId"`
	Quantity      int             `json:"quantity"`
	Price         Money           `json:"price"`
	Modifications string          `json:"modifications,omitempty"`
	Status        OrderItemStatus `json:"status"`
	Revision      int64           `json:"revision"`
}

// OrderItemWithMenuItem embeds the current menu item for display. The menu
// item reflects catalog state at read time; the line price does not.
type OrderItemWithMenuItem struct {
	OrderItem
	MenuItem *MenuItem `json:"menuItem,omitempty"`
}

// OrderWithItems is the hydrated order shape returned by reads: items with
// their menu items, the table (if any) and the owning staff member,
// resolved against the stores at read time.
type OrderWithItems struct {
	Order
	Items []OrderItemWithMenuItem `json:"items"`
	Table *Table                  `json:"table,omitempty"`
	Staff *Staff                  `json:"staff,omitempty"`
}

// DailyStats is the dashboard aggregate recomputed on demand.
type DailyStats struct {
	DailySales     Money `json:"dailySales"`
	ActiveOrders   int   `json:"activeOrders"`
	TableOccupancy int   `json:"tableOccupancy"`
	StaffOnline    int   `json:"staffOnline"`
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusServed, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// ValidOrderItemStatus reports whether s is a known order item status.
func ValidOrderItemStatus(s OrderItemStatus) bool {
	switch s {
	case ItemPending, ItemPreparing, ItemReady:
		return true
	}
	return false
}

// ValidTableStatus reports whether s is a known table status.
func ValidTableStatus(s TableStatus) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableCleaning:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile, PaymentGiftCard:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// ValidStaffRole reports whether r is a known staff role.
func ValidStaffRole(r StaffRole) bool {
	switch r {
	case RoleServer, RoleManager, RoleAdmin, RoleKitchen:
		return true
	}
	return false
}
