package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/models"
)

func (st *state) getOrder(id uuid.UUID) (models.Order, error) {
	order, ok := st.orders[id]
	if !ok {
		return models.Order{}, fmt.Errorf("%w: order %s", errs.ErrNotFound, id)
	}
	return order, nil
}

func (st *state) listOrders() ([]models.Order, error) {
	result := make([]models.Order, 0, len(st.orders))
	for _, order := range st.orders {
		result = append(result, order)
	}
	sortOrdersByCreation(result)
	return result, nil
}

func (st *state) listActiveOrders() ([]models.Order, error) {
	var result []models.Order
	for _, order := range st.orders {
		if !order.Status.IsTerminal() {
			result = append(result, order)
		}
	}
	sortOrdersByCreation(result)
	return result, nil
}

// sortOrdersByCreation sorts oldest first; the kitchen view relies on
// this FIFO ordering.
func sortOrdersByCreation(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
}

func (st *state) listOrderItems(orderID uuid.UUID) ([]models.OrderItem, error) {
	var result []models.OrderItem
	for _, item := range st.orderItems {
		if item.OrderID == orderID {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID.String() < result[j].ID.String() })
	return result, nil
}

func (st *state) getOrderItem(id uuid.UUID) (models.OrderItem, error) {
	item, ok := st.orderItems[id]
	if !ok {
		return models.OrderItem{}, fmt.Errorf("%w: order item %s", errs.ErrNotFound, id)
	}
	return item, nil
}

func (st *state) createOrder(order models.Order, items []models.OrderItem) (models.Order, error) {
	order.Revision = 1
	st.orders[order.ID] = order
	for _, item := range items {
		item.OrderID = order.ID
		item.Revision = 1
		st.orderItems[item.ID] = item
	}
	return order, nil
}

func (st *state) updateOrder(order models.Order) (models.Order, error) {
	existing, ok := st.orders[order.ID]
	if !ok {
		return models.Order{}, fmt.Errorf("%w: order %s", errs.ErrNotFound, order.ID)
	}
	if existing.Revision != order.Revision {
		return models.Order{}, fmt.Errorf("%w: order %s was modified concurrently", errs.ErrConflict, order.ID)
	}
	order.Revision++
	st.orders[order.ID] = order
	return order, nil
}

func (st *state) updateOrderItem(item models.OrderItem) (models.OrderItem, error) {
	existing, ok := st.orderItems[item.ID]
	if !ok {
		return models.OrderItem{}, fmt.Errorf("%w: order item %s", errs.ErrNotFound, item.ID)
	}
	if existing.Revision != item.Revision {
		return models.OrderItem{}, fmt.Errorf("%w: order item %s was modified concurrently", errs.ErrConflict, item.ID)
	}
	item.Revision++
	st.orderItems[item.ID] = item
	return item, nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.getOrder(id)
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.listOrders()
}

func (s *Store) ListActiveOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.listActiveOrders()
}

func (s *Store) ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.listOrderItems(orderID)
}

func (s *Store) GetOrderItem(ctx context.Context, id uuid.UUID) (models.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.getOrderItem(id)
}

func (s *Store) CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.createOrder(order, items)
}

func (s *Store) UpdateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.updateOrder(order)
}

func (s *Store) UpdateOrderItem(ctx context.Context, item models.OrderItem) (models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.updateOrderItem(item)
}

func (t *txStore) GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error) {
	return t.s.st.getOrder(id)
}

func (t *txStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	return t.s.st.listOrders()
}

func (t *txStore) ListActiveOrders(ctx context.Context) ([]models.Order, error) {
	return t.s.st.listActiveOrders()
}

func (t *txStore) ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	return t.s.st.listOrderItems(orderID)
}

func (t *txStore) GetOrderItem(ctx context.Context, id uuid.UUID) (models.OrderItem, error) {
	return t.s.st.getOrderItem(id)
}

func (t *txStore) CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error) {
	return t.s.st.createOrder(order, items)
}

func (t *txStore) UpdateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	return t.s.st.updateOrder(order)
}

func (t *txStore) UpdateOrderItem(ctx context.Context, item models.OrderItem) (models.OrderItem, error) {
	return t.s.st.updateOrderItem(item)
}
