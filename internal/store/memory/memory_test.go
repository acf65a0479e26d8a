package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"restaurant-pos/internal/errs"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/store"
)

func TestUpdateTableStaleRevision(t *testing.T) {
	ctx := context.Background()
	st := New()

	table, err := st.CreateTable(ctx, models.Table{
		ID:     uuid.New(),
		Number: 1,
		Seats:  4,
		Status: models.TableAvailable,
	})
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	// First writer wins.
	first := table
	first.Status = models.TableOccupied
	if _, err := st.UpdateTable(ctx, first); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// Second writer holds the original revision and must be rejected.
	second := table
	second.Status = models.TableCleaning
	if _, err := st.UpdateTable(ctx, second); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}

	current, err := st.GetTable(ctx, table.ID)
	if err != nil {
		t.Fatalf("get table: %v", err)
	}
	if current.Status != models.TableOccupied {
		t.Errorf("status = %s, want the first writer's occupied", current.Status)
	}
}

func TestWithinTxRollsBackWrites(t *testing.T) {
	ctx := context.Background()
	st := New()

	table, err := st.CreateTable(ctx, models.Table{
		ID:     uuid.New(),
		Number: 1,
		Seats:  4,
		Status: models.TableAvailable,
	})
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	boom := errors.New("boom")
	err = st.WithinTx(ctx, func(s store.Store) error {
		occupied := table
		occupied.Status = models.TableOccupied
		if _, err := s.UpdateTable(ctx, occupied); err != nil {
			return err
		}
		if _, err := s.CreateOrder(ctx, models.Order{
			ID:          uuid.New(),
			OrderNumber: 1001,
			StaffID:     uuid.New(),
			Status:      models.StatusPending,
		}, nil); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	current, err := st.GetTable(ctx, table.ID)
	if err != nil {
		t.Fatalf("get table: %v", err)
	}
	if current.Status != models.TableAvailable {
		t.Errorf("table status = %s, want available after rollback", current.Status)
	}

	orders, err := st.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("orders = %d, want 0 after rollback", len(orders))
	}
}

func TestOrderNumbersSurviveRollback(t *testing.T) {
	ctx := context.Background()
	st := New()

	boom := errors.New("boom")
	err := st.WithinTx(ctx, func(s store.Store) error {
		if _, err := s.NextOrderNumber(ctx); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	// The number allocated inside the failed transaction is burned.
	number, err := st.NextOrderNumber(ctx)
	if err != nil {
		t.Fatalf("next order number: %v", err)
	}
	if number != 1002 {
		t.Errorf("number = %d, want 1002", number)
	}
}

func TestCreateStaffDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	st := New()

	staff := models.Staff{
		ID:       uuid.New(),
		Username: "alice",
		Password: "x",
		Name:     "Alice",
		Role:     models.RoleServer,
		IsActive: true,
	}
	if _, err := st.CreateStaff(ctx, staff); err != nil {
		t.Fatalf("create staff: %v", err)
	}

	staff.ID = uuid.New()
	if _, err := st.CreateStaff(ctx, staff); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestNestedWithinTxJoins(t *testing.T) {
	ctx := context.Background()
	st := New()

	err := st.WithinTx(ctx, func(outer store.Store) error {
		return outer.WithinTx(ctx, func(inner store.Store) error {
			_, err := inner.CreateTable(ctx, models.Table{
				ID:     uuid.New(),
				Number: 7,
				Seats:  2,
				Status: models.TableAvailable,
			})
			return err
		})
	})
	if err != nil {
		t.Fatalf("nested tx: %v", err)
	}

	tables, err := st.ListTables(ctx)
	if err != nil {
		t.Fatalf("list tables: %v", err)
	}
	if len(tables) != 1 {
		t.Errorf("tables = %d, want 1", len(tables))
	}
}
