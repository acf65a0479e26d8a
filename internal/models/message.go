package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderCreatedMessage is published to the orders exchange when an order
// is committed. Consumers see the stored figures, never recomputed ones.
type OrderCreatedMessage struct {
	OrderID      uuid.UUID  `json:"orderId"`
	OrderNumber  int64      `json:"orderNumber"`
	TableID      *uuid.UUID `json:"tableId,omitempty"`
	StaffID      uuid.UUID  `json:"staffId"`
	CustomerName string     `json:"customerName,omitempty"`
	Total        Money      `json:"total"`
	ItemCount    int        `json:"itemCount"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// StatusUpdateMessage is published when an order's status changes.
type StatusUpdateMessage struct {
	OrderID     uuid.UUID   `json:"orderId"`
	OrderNumber int64       `json:"orderNumber"`
	OldStatus   OrderStatus `json:"oldStatus"`
	NewStatus   OrderStatus `json:"newStatus"`
	Timestamp   time.Time   `json:"timestamp"`
}

// NewOrderCreatedMessage builds the creation event from a stored order.
func NewOrderCreatedMessage(order Order, itemCount int) *OrderCreatedMessage {
	return &OrderCreatedMessage{
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		TableID:      order.TableID,
		StaffID:      order.StaffID,
		CustomerName: order.CustomerName,
		Total:        order.Total,
		ItemCount:    itemCount,
		CreatedAt:    order.CreatedAt,
	}
}

// NewStatusUpdateMessage builds the status change event.
func NewStatusUpdateMessage(order Order, oldStatus OrderStatus) *StatusUpdateMessage {
	return &StatusUpdateMessage{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		OldStatus:   oldStatus,
		NewStatus:   order.Status,
		Timestamp:   time.Now().UTC(),
	}
}

// OrderCreatedRoutingKey generates the routing key for creation events.
func OrderCreatedRoutingKey() string {
	return "order.created"
}

// StatusUpdateRoutingKey generates the routing key for status events,
// letting consumers bind on a specific status (order.status.paid).
func StatusUpdateRoutingKey(status OrderStatus) string {
	return fmt.Sprintf("order.status.%s", status)
}
