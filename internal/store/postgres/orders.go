package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/models"
)

func scanOrder(row pgx.Row) (models.Order, error) {
	var order models.Order
	var subtotal, tax, serviceCharge, total string
	var paymentMethod *string

	err := row.Scan(&order.ID, &order.OrderNumber, &order.TableID, &order.StaffID,
		&order.CustomerName, &order.Status, &subtotal, &tax, &serviceCharge, &total,
		&paymentMethod, &order.PaymentStatus, &order.Notes,
		&order.CreatedAt, &order.UpdatedAt, &order.Revision)
	if err != nil {
		return models.Order{}, err
	}

	if order.Subtotal, err = models.MoneyFromString(subtotal); err != nil {
		return models.Order{}, err
	}
	if order.Tax, err = models.MoneyFromString(tax); err != nil {
		return models.Order{}, err
	}
	if order.ServiceCharge, err = models.MoneyFromString(serviceCharge); err != nil {
		return models.Order{}, err
	}
	if order.Total, err = models.MoneyFromString(total); err != nil {
		return models.Order{}, err
	}
	if paymentMethod != nil {
		method := models.PaymentMethod(*paymentMethod)
		order.PaymentMethod = &method
	}
	return order, nil
}

func scanOrderItem(row pgx.Row) (models.OrderItem, error) {
	var item models.OrderItem
	var price string
	err := row.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity,
		&price, &item.Modifications, &item.Status, &item.Revision)
	if err != nil {
		return models.OrderItem{}, err
	}
	item.Price, err = models.MoneyFromString(price)
	return item, err
}

func paymentMethodArg(order models.Order) *string {
	if order.PaymentMethod == nil {
		return nil
	}
	method := string(*order.PaymentMethod)
	return &method
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error) {
	order, err := scanOrder(s.q.QueryRow(ctx, getOrderSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Order{}, fmt.Errorf("%w: order %s", errs.ErrNotFound, id)
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.queryOrders(ctx, listOrdersSQL)
}

func (s *Store) ListActiveOrders(ctx context.Context) ([]models.Order, error) {
	return s.queryOrders(ctx, listActiveOrdersSQL)
}

func (s *Store) queryOrders(ctx context.Context, sql string, args ...any) ([]models.Order, error) {
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var result []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		result = append(result, order)
	}
	return result, rows.Err()
}

func (s *Store) ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	rows, err := s.q.Query(ctx, listOrderItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	var result []models.OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (s *Store) GetOrderItem(ctx context.Context, id uuid.UUID) (models.OrderItem, error) {
	item, err := scanOrderItem(s.q.QueryRow(ctx, getOrderItemSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.OrderItem{}, fmt.Errorf("%w: order item %s", errs.ErrNotFound, id)
	}
	if err != nil {
		return models.OrderItem{}, fmt.Errorf("failed to get order item: %w", err)
	}
	return item, nil
}

// CreateOrder inserts the order and its items. Callers that need the
// insert to be atomic with other writes run it inside WithinTx.
func (s *Store) CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error) {
	created, err := scanOrder(s.q.QueryRow(ctx, insertOrderSQL,
		order.ID, order.OrderNumber, order.TableID, order.StaffID, order.CustomerName,
		order.Status, order.Subtotal, order.Tax, order.ServiceCharge, order.Total,
		paymentMethodArg(order), order.PaymentStatus, order.Notes,
		order.CreatedAt, order.UpdatedAt))
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range items {
		_, err := s.q.Exec(ctx, insertOrderItemSQL,
			item.ID, created.ID, item.MenuItemID, item.Quantity, item.Price,
			item.Modifications, item.Status)
		if err != nil {
			return models.Order{}, fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return created, nil
}

func (s *Store) UpdateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	updated, err := scanOrder(s.q.QueryRow(ctx, updateOrderSQL,
		order.CustomerName, order.Status, paymentMethodArg(order), order.PaymentStatus,
		order.Notes, order.UpdatedAt, order.ID, order.Revision))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Order{}, s.staleOrMissing(ctx, orderExistsSQL, order.ID, "order")
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	return updated, nil
}

func (s *Store) UpdateOrderItem(ctx context.Context, item models.OrderItem) (models.OrderItem, error) {
	updated, err := scanOrderItem(s.q.QueryRow(ctx, updateOrderItemSQL,
		item.Status, item.ID, item.Revision))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.OrderItem{}, s.staleOrMissing(ctx, orderItemExistsSQL, item.ID, "order item")
	}
	if err != nil {
		return models.OrderItem{}, fmt.Errorf("failed to update order item: %w", err)
	}
	return updated, nil
}
