// Package engine implements the order lifecycle: creation with price
// snapshots, status transitions and their cascades into table occupancy.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/pricing"
	"restaurant-pos/internal/store"
)

// EventPublisher publishes order lifecycle events to the message broker.
// A nil publisher disables eventing; order state is the source of truth
// and publish failures never fail the operation that caused them.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, routingKey string, message interface{}) error
}

// Engine drives order creation, pricing, status transitions and the
// cascades into the table store.
type Engine struct {
	store  store.Store
	events EventPublisher
	logger *logger.Logger
}

// New creates an order engine. events may be nil.
func New(st store.Store, events EventPublisher, log *logger.Logger) *Engine {
	return &Engine{
		store:  st,
		events: events,
		logger: log,
	}
}

// validTransitions is the enforced status progression. The linear path is
// pending -> preparing -> ready -> served -> paid; cancelled is reachable
// from every non-terminal status. Repeating the current status is treated
// as a no-op rather than an invalid move, so replayed requests stay
// idempotent.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:   {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing: {models.StatusReady, models.StatusCancelled},
	models.StatusReady:     {models.StatusServed, models.StatusCancelled},
	models.StatusServed:    {models.StatusPaid, models.StatusCancelled},
	models.StatusPaid:      {},
	models.StatusCancelled: {},
}

func transitionAllowed(from, to models.OrderStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateOrder validates the cart, snapshots menu item prices, computes the
// charges, assigns the next order number and persists the order with its
// items. When the order is bound to a table the table is marked occupied
// in the same transaction. Returns the hydrated order.
func (e *Engine) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (models.OrderWithItems, error) {
	if err := req.Validate(); err != nil {
		return models.OrderWithItems{}, err
	}

	var created models.Order
	var itemCount int

	err := e.store.WithinTx(ctx, func(s store.Store) error {
		if _, err := s.GetStaff(ctx, req.StaffID); err != nil {
			return err
		}

		var table *models.Table
		if req.TableID != nil {
			t, err := s.GetTable(ctx, *req.TableID)
			if err != nil {
				return err
			}
			table = &t
		}

		lines := make([]pricing.Line, 0, len(req.Items))
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, reqItem := range req.Items {
			menuItem, err := s.GetMenuItem(ctx, reqItem.MenuItemID)
			if err != nil {
				return err
			}
			lines = append(lines, pricing.Line{Price: menuItem.Price, Quantity: reqItem.Quantity})
			items = append(items, models.OrderItem{
				ID:            uuid.New(),
				MenuItemID:    menuItem.ID,
				Quantity:      reqItem.Quantity,
				Price:         menuItem.Price,
				Modifications: reqItem.Modifications,
				Status:        models.ItemPending,
			})
		}

		totals := pricing.Calculate(lines)

		number, err := s.NextOrderNumber(ctx)
		if err != nil {
			return fmt.Errorf("allocating order number: %w", err)
		}

		now := time.Now()
		order := models.Order{
			ID:            uuid.New(),
			OrderNumber:   number,
			TableID:       req.TableID,
			StaffID:       req.StaffID,
			CustomerName:  req.CustomerName,
			Status:        models.StatusPending,
			Subtotal:      totals.Subtotal,
			Tax:           totals.Tax,
			ServiceCharge: totals.ServiceCharge,
			Total:         totals.Total,
			PaymentStatus: models.PaymentPending,
			Notes:         req.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		created, err = s.CreateOrder(ctx, order, items)
		if err != nil {
			return fmt.Errorf("persisting order: %w", err)
		}
		itemCount = len(items)

		if table != nil && table.Status != models.TableOccupied {
			table.Status = models.TableOccupied
			if _, err := s.UpdateTable(ctx, *table); err != nil {
				return fmt.Errorf("occupying table %d: %w", table.Number, err)
			}
		}

		return nil
	})
	if err != nil {
		return models.OrderWithItems{}, err
	}

	e.publish(ctx, models.OrderCreatedRoutingKey(), models.NewOrderCreatedMessage(created, itemCount), "order_created")

	return e.hydrate(ctx, e.store, created)
}

// TransitionStatus moves an order to newStatus, enforcing the documented
// progression. Transitioning to paid frees the order's table in the same
// transaction. Repeating the current status is a no-op.
func (e *Engine) TransitionStatus(ctx context.Context, orderID uuid.UUID, newStatus models.OrderStatus) (models.OrderWithItems, error) {
	if !models.ValidOrderStatus(newStatus) {
		return models.OrderWithItems{}, fmt.Errorf("%w: invalid order status %q", errs.ErrValidation, newStatus)
	}

	var updated models.Order
	var oldStatus models.OrderStatus
	changed := false

	err := e.store.WithinTx(ctx, func(s store.Store) error {
		order, err := s.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		oldStatus = order.Status

		if order.Status == newStatus {
			updated = order
			return nil
		}
		if !transitionAllowed(order.Status, newStatus) {
			return fmt.Errorf("%w: invalid status transition from %q to %q", errs.ErrValidation, order.Status, newStatus)
		}

		order.Status = newStatus
		order.UpdatedAt = time.Now()
		updated, err = s.UpdateOrder(ctx, order)
		if err != nil {
			return err
		}
		changed = true

		// Paying an order frees its table. Both writes commit together or
		// not at all; a paid order must never leave its table occupied.
		if newStatus == models.StatusPaid && order.TableID != nil {
			table, err := s.GetTable(ctx, *order.TableID)
			if err != nil {
				return err
			}
			if table.Status != models.TableAvailable {
				table.Status = models.TableAvailable
				if _, err := s.UpdateTable(ctx, table); err != nil {
					return fmt.Errorf("freeing table %d: %w", table.Number, err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return models.OrderWithItems{}, err
	}

	if changed {
		e.publish(ctx, models.StatusUpdateRoutingKey(newStatus), models.NewStatusUpdateMessage(updated, oldStatus), "order_status_changed")
	}

	return e.hydrate(ctx, e.store, updated)
}

// UpdateOrder patches the fields legitimately mutable after creation:
// payment method, payment status, customer name and notes. It never
// recomputes totals; items are immutable once the order is submitted.
func (e *Engine) UpdateOrder(ctx context.Context, orderID uuid.UUID, req *models.UpdateOrderRequest) (models.Order, error) {
	if err := req.Validate(); err != nil {
		return models.Order{}, err
	}

	var updated models.Order

	err := e.store.WithinTx(ctx, func(s store.Store) error {
		order, err := s.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if req.Revision != nil && *req.Revision != order.Revision {
			return fmt.Errorf("%w: order %s was modified concurrently", errs.ErrConflict, orderID)
		}

		if req.PaymentMethod != nil {
			order.PaymentMethod = req.PaymentMethod
		}
		if req.PaymentStatus != nil {
			order.PaymentStatus = *req.PaymentStatus
		}
		if req.CustomerName != nil {
			order.CustomerName = *req.CustomerName
		}
		if req.Notes != nil {
			order.Notes = *req.Notes
		}
		order.UpdatedAt = time.Now()

		updated, err = s.UpdateOrder(ctx, order)
		return err
	})
	if err != nil {
		return models.Order{}, err
	}

	return updated, nil
}

// UpdateOrderItem sets the kitchen status of a single order line.
func (e *Engine) UpdateOrderItem(ctx context.Context, itemID uuid.UUID, req *models.UpdateOrderItemRequest) (models.OrderItem, error) {
	if err := req.Validate(); err != nil {
		return models.OrderItem{}, err
	}

	var updated models.OrderItem

	err := e.store.WithinTx(ctx, func(s store.Store) error {
		item, err := s.GetOrderItem(ctx, itemID)
		if err != nil {
			return err
		}
		item.Status = req.Status
		updated, err = s.UpdateOrderItem(ctx, item)
		return err
	})
	if err != nil {
		return models.OrderItem{}, err
	}

	return updated, nil
}

// GetOrder returns one hydrated order.
func (e *Engine) GetOrder(ctx context.Context, orderID uuid.UUID) (models.OrderWithItems, error) {
	order, err := e.store.GetOrder(ctx, orderID)
	if err != nil {
		return models.OrderWithItems{}, err
	}
	return e.hydrate(ctx, e.store, order)
}

// GetOrders returns every order, hydrated, oldest first.
func (e *Engine) GetOrders(ctx context.Context) ([]models.OrderWithItems, error) {
	orders, err := e.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return e.hydrateAll(ctx, orders)
}

// GetActiveOrders returns orders that are neither paid nor cancelled,
// oldest first. The kitchen view depends on this FIFO ordering.
func (e *Engine) GetActiveOrders(ctx context.Context) ([]models.OrderWithItems, error) {
	orders, err := e.store.ListActiveOrders(ctx)
	if err != nil {
		return nil, err
	}
	return e.hydrateAll(ctx, orders)
}

func (e *Engine) hydrateAll(ctx context.Context, orders []models.Order) ([]models.OrderWithItems, error) {
	result := make([]models.OrderWithItems, 0, len(orders))
	for _, order := range orders {
		hydrated, err := e.hydrate(ctx, e.store, order)
		if err != nil {
			return nil, err
		}
		result = append(result, hydrated)
	}
	return result, nil
}

// hydrate resolves an order's items, table and staff against the stores at
// read time. Display fields reflect current catalog/table/staff state;
// line prices stay as snapshotted.
func (e *Engine) hydrate(ctx context.Context, s store.Store, order models.Order) (models.OrderWithItems, error) {
	items, err := s.ListOrderItems(ctx, order.ID)
	if err != nil {
		return models.OrderWithItems{}, err
	}

	hydrated := models.OrderWithItems{
		Order: order,
		Items: make([]models.OrderItemWithMenuItem, 0, len(items)),
	}

	for _, item := range items {
		withMenuItem := models.OrderItemWithMenuItem{OrderItem: item}
		if menuItem, err := s.GetMenuItem(ctx, item.MenuItemID); err == nil {
			withMenuItem.MenuItem = &menuItem
		}
		hydrated.Items = append(hydrated.Items, withMenuItem)
	}

	if order.TableID != nil {
		if table, err := s.GetTable(ctx, *order.TableID); err == nil {
			hydrated.Table = &table
		}
	}
	if staff, err := s.GetStaff(ctx, order.StaffID); err == nil {
		hydrated.Staff = &staff
	}

	return hydrated, nil
}

func (e *Engine) publish(ctx context.Context, routingKey string, message interface{}, action string) {
	if e.events == nil {
		return
	}
	if err := e.events.PublishOrderEvent(ctx, routingKey, message); err != nil {
		e.logger.Error(action, "", "Failed to publish order event", err, map[string]interface{}{
			"routing_key": routingKey,
		})
	}
}
