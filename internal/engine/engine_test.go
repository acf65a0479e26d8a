package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/store/memory"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu       sync.Mutex
	routings []string
	messages []interface{}
}

func (p *recordingPublisher) PublishOrderEvent(ctx context.Context, routingKey string, message interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.routings = append(p.routings, routingKey)
	p.messages = append(p.messages, message)
	return nil
}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.routings...)
}

type fixture struct {
	engine *Engine
	store  *memory.Store
	events *recordingPublisher
	staff  models.Staff
	table  models.Table
	pasta  models.MenuItem
	salad  models.MenuItem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	st := memory.New()

	staff, err := st.CreateStaff(ctx, models.Staff{
		ID:        uuid.New(),
		Username:  "alice",
		Password:  "secret",
		Name:      "Alice",
		Role:      models.RoleServer,
		IsActive:  true,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}

	category, err := st.CreateMenuCategory(ctx, models.MenuCategory{
		ID:       uuid.New(),
		Name:     "Mains",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	newItem := func(name, price string) models.MenuItem {
		item, err := st.CreateMenuItem(ctx, models.MenuItem{
			ID:          uuid.New(),
			CategoryID:  category.ID,
			Name:        name,
			Price:       models.MustMoney(price),
			IsAvailable: true,
		})
		if err != nil {
			t.Fatalf("create menu item %s: %v", name, err)
		}
		return item
	}

	table, err := st.CreateTable(ctx, models.Table{
		ID:     uuid.New(),
		Number: 1,
		Seats:  4,
		Status: models.TableAvailable,
	})
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	events := &recordingPublisher{}
	return &fixture{
		engine: New(st, events, logger.New("engine-test")),
		store:  st,
		events: events,
		staff:  staff,
		table:  table,
		pasta:  newItem("Pasta Carbonara", "16.50"),
		salad:  newItem("Caesar Salad", "9.50"),
	}
}

func (f *fixture) createOrder(t *testing.T, tableID *uuid.UUID) models.OrderWithItems {
	t.Helper()
	order, err := f.engine.CreateOrder(context.Background(), &models.CreateOrderRequest{
		TableID: tableID,
		StaffID: f.staff.ID,
		Items: []models.CreateOrderItemRequest{
			{MenuItemID: f.pasta.ID, Quantity: 2},
			{MenuItemID: f.salad.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func (f *fixture) payOrder(t *testing.T, orderID uuid.UUID) models.OrderWithItems {
	t.Helper()
	var last models.OrderWithItems
	for _, status := range []models.OrderStatus{
		models.StatusPreparing, models.StatusReady, models.StatusServed, models.StatusPaid,
	} {
		order, err := f.engine.TransitionStatus(context.Background(), orderID, status)
		if err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
		last = order
	}
	return last
}

func TestCreateOrderComputesCharges(t *testing.T) {
	f := newFixture(t)

	order := f.createOrder(t, &f.table.ID)

	checks := []struct {
		name string
		got  models.Money
		want string
	}{
		{"subtotal", order.Subtotal, "42.50"},
		{"tax", order.Tax, "3.51"},
		{"serviceCharge", order.ServiceCharge, "2.13"},
		{"total", order.Total, "48.14"},
	}
	for _, check := range checks {
		if check.got.String() != check.want {
			t.Errorf("%s = %s, want %s", check.name, check.got, check.want)
		}
	}

	if order.Status != models.StatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if order.OrderNumber != 1001 {
		t.Errorf("orderNumber = %d, want 1001", order.OrderNumber)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}

	table, err := f.store.GetTable(context.Background(), f.table.ID)
	if err != nil {
		t.Fatalf("get table: %v", err)
	}
	if table.Status != models.TableOccupied {
		t.Errorf("table status = %s, want occupied", table.Status)
	}

	keys := f.events.keys()
	if len(keys) != 1 || keys[0] != "order.created" {
		t.Errorf("published routing keys = %v, want [order.created]", keys)
	}
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.createOrder(t, nil)

	// Raise the menu price after the order exists.
	pasta, err := f.store.GetMenuItem(ctx, f.pasta.ID)
	if err != nil {
		t.Fatalf("get menu item: %v", err)
	}
	pasta.Price = models.MustMoney("99.00")
	if _, err := f.store.UpdateMenuItem(ctx, pasta); err != nil {
		t.Fatalf("update menu item: %v", err)
	}

	reloaded, err := f.engine.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	for _, item := range reloaded.Items {
		if item.MenuItemID == f.pasta.ID && item.Price.String() != "16.50" {
			t.Errorf("line price = %s, want snapshotted 16.50", item.Price)
		}
	}
	if reloaded.Total.String() != "48.14" {
		t.Errorf("total = %s, want 48.14 despite catalog change", reloaded.Total)
	}
}

func TestCreateOrderUnknownMenuItemPersistsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.engine.CreateOrder(ctx, &models.CreateOrderRequest{
		TableID: &f.table.ID,
		StaffID: f.staff.ID,
		Items: []models.CreateOrderItemRequest{
			{MenuItemID: f.pasta.ID, Quantity: 1},
			{MenuItemID: uuid.New(), Quantity: 1},
		},
	})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	orders, err := f.store.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("orders persisted = %d, want 0", len(orders))
	}

	table, err := f.store.GetTable(ctx, f.table.ID)
	if err != nil {
		t.Fatalf("get table: %v", err)
	}
	if table.Status != models.TableAvailable {
		t.Errorf("table status = %s, want available", table.Status)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		req  *models.CreateOrderRequest
	}{
		{"missing staff", &models.CreateOrderRequest{
			Items: []models.CreateOrderItemRequest{{MenuItemID: f.pasta.ID, Quantity: 1}},
		}},
		{"empty items", &models.CreateOrderRequest{StaffID: f.staff.ID}},
		{"zero quantity", &models.CreateOrderRequest{
			StaffID: f.staff.ID,
			Items:   []models.CreateOrderItemRequest{{MenuItemID: f.pasta.ID, Quantity: 0}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.CreateOrder(context.Background(), tt.req)
			if !errors.Is(err, errs.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateOrderConcurrentNumbersDistinct(t *testing.T) {
	f := newFixture(t)
	const n = 20

	numbers := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := f.engine.CreateOrder(context.Background(), &models.CreateOrderRequest{
				StaffID: f.staff.ID,
				Items:   []models.CreateOrderItemRequest{{MenuItemID: f.salad.ID, Quantity: 1}},
			})
			if err != nil {
				t.Errorf("create order: %v", err)
				return
			}
			numbers <- order.OrderNumber
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int64]bool)
	for number := range numbers {
		if seen[number] {
			t.Fatalf("order number %d assigned twice", number)
		}
		seen[number] = true
	}
	if len(seen) != n {
		t.Errorf("distinct numbers = %d, want %d", len(seen), n)
	}
}

func TestTransitionStatusPaidFreesTable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.createOrder(t, &f.table.ID)
	paid := f.payOrder(t, order.ID)

	if paid.Status != models.StatusPaid {
		t.Errorf("status = %s, want paid", paid.Status)
	}

	table, err := f.store.GetTable(ctx, f.table.ID)
	if err != nil {
		t.Fatalf("get table: %v", err)
	}
	if table.Status != models.TableAvailable {
		t.Errorf("table status = %s, want available after payment", table.Status)
	}
}

func TestTransitionStatusPaidTwiceIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.createOrder(t, &f.table.ID)
	f.payOrder(t, order.ID)

	again, err := f.engine.TransitionStatus(ctx, order.ID, models.StatusPaid)
	if err != nil {
		t.Fatalf("repeated paid transition: %v", err)
	}
	if again.Status != models.StatusPaid {
		t.Errorf("status = %s, want paid", again.Status)
	}

	table, err := f.store.GetTable(ctx, f.table.ID)
	if err != nil {
		t.Fatalf("get table: %v", err)
	}
	if table.Status != models.TableAvailable {
		t.Errorf("table status = %s, want available", table.Status)
	}
}

func TestTransitionStatusRejectsSkips(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.createOrder(t, nil)

	tests := []struct {
		name string
		to   models.OrderStatus
	}{
		{"pending to served", models.StatusServed},
		{"pending to paid", models.StatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.TransitionStatus(ctx, order.ID, tt.to)
			if !errors.Is(err, errs.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}

	// Terminal statuses accept nothing but themselves.
	cancelled, err := f.engine.TransitionStatus(ctx, order.ID, models.StatusCancelled)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", cancelled.Status)
	}
	if _, err := f.engine.TransitionStatus(ctx, order.ID, models.StatusPreparing); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation reviving a cancelled order", err)
	}
}

func TestTransitionStatusPublishesEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.createOrder(t, nil)
	if _, err := f.engine.TransitionStatus(ctx, order.ID, models.StatusPreparing); err != nil {
		t.Fatalf("transition: %v", err)
	}

	keys := f.events.keys()
	want := []string{"order.created", "order.status.preparing"}
	if len(keys) != len(want) {
		t.Fatalf("routing keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("routing key [%d] = %s, want %s", i, keys[i], want[i])
		}
	}

	// A no-op transition publishes nothing.
	if _, err := f.engine.TransitionStatus(ctx, order.ID, models.StatusPreparing); err != nil {
		t.Fatalf("repeat transition: %v", err)
	}
	if got := len(f.events.keys()); got != len(want) {
		t.Errorf("events after no-op = %d, want %d", got, len(want))
	}
}

func TestGetActiveOrdersFiltersAndSorts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.createOrder(t, nil)
	second := f.createOrder(t, nil)
	third := f.createOrder(t, nil)
	fourth := f.createOrder(t, nil)

	f.payOrder(t, second.ID)
	if _, err := f.engine.TransitionStatus(ctx, third.ID, models.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	active, err := f.engine.GetActiveOrders(ctx)
	if err != nil {
		t.Fatalf("get active orders: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active orders = %d, want 2", len(active))
	}
	if active[0].ID != first.ID || active[1].ID != fourth.ID {
		t.Errorf("active order = [%d %d], want oldest first [%d %d]",
			active[0].OrderNumber, active[1].OrderNumber, first.OrderNumber, fourth.OrderNumber)
	}
	for _, order := range active {
		if order.Status.IsTerminal() {
			t.Errorf("order %d has terminal status %s", order.OrderNumber, order.Status)
		}
	}
}

func TestUpdateOrderPatchesFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.createOrder(t, nil)

	method := models.PaymentCard
	status := models.PaymentPaid
	name := "Walk-in"
	updated, err := f.engine.UpdateOrder(ctx, order.ID, &models.UpdateOrderRequest{
		PaymentMethod: &method,
		PaymentStatus: &status,
		CustomerName:  &name,
	})
	if err != nil {
		t.Fatalf("update order: %v", err)
	}

	if updated.PaymentMethod == nil || *updated.PaymentMethod != models.PaymentCard {
		t.Errorf("paymentMethod = %v, want card", updated.PaymentMethod)
	}
	if updated.PaymentStatus != models.PaymentPaid {
		t.Errorf("paymentStatus = %s, want paid", updated.PaymentStatus)
	}
	if updated.CustomerName != "Walk-in" {
		t.Errorf("customerName = %q, want Walk-in", updated.CustomerName)
	}
	if updated.Total.String() != order.Total.String() {
		t.Errorf("total changed from %s to %s on a field patch", order.Total, updated.Total)
	}
}

func TestUpdateOrderStaleRevision(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.createOrder(t, nil)

	name := "First"
	if _, err := f.engine.UpdateOrder(ctx, order.ID, &models.UpdateOrderRequest{CustomerName: &name}); err != nil {
		t.Fatalf("first update: %v", err)
	}

	stale := order.Revision
	name = "Second"
	_, err := f.engine.UpdateOrder(ctx, order.ID, &models.UpdateOrderRequest{
		CustomerName: &name,
		Revision:     &stale,
	})
	if !errors.Is(err, errs.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict on stale revision", err)
	}
}

func TestUpdateOrderItemStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.createOrder(t, nil)
	itemID := order.Items[0].ID

	updated, err := f.engine.UpdateOrderItem(ctx, itemID, &models.UpdateOrderItemRequest{
		Status: models.ItemReady,
	})
	if err != nil {
		t.Fatalf("update order item: %v", err)
	}
	if updated.Status != models.ItemReady {
		t.Errorf("status = %s, want ready", updated.Status)
	}

	if _, err := f.engine.UpdateOrderItem(ctx, uuid.New(), &models.UpdateOrderItemRequest{
		Status: models.ItemReady,
	}); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
