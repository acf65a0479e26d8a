package stats

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/store/memory"
)

func seedOrder(t *testing.T, st *memory.Store, total string, status models.OrderStatus, payment models.PaymentStatus, createdAt time.Time) {
	t.Helper()
	_, err := st.CreateOrder(context.Background(), models.Order{
		ID:            uuid.New(),
		OrderNumber:   time.Now().UnixNano(),
		StaffID:       uuid.New(),
		Status:        status,
		Total:         models.MustMoney(total),
		PaymentStatus: payment,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}, nil)
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
}

func seedTable(t *testing.T, st *memory.Store, number int, status models.TableStatus) {
	t.Helper()
	_, err := st.CreateTable(context.Background(), models.Table{
		ID:     uuid.New(),
		Number: number,
		Seats:  4,
		Status: status,
	})
	if err != nil {
		t.Fatalf("seed table: %v", err)
	}
}

func seedStaff(t *testing.T, st *memory.Store, username string, active bool) {
	t.Helper()
	_, err := st.CreateStaff(context.Background(), models.Staff{
		ID:       uuid.New(),
		Username: username,
		Password: "x",
		Name:     username,
		Role:     models.RoleServer,
		IsActive: active,
	})
	if err != nil {
		t.Fatalf("seed staff: %v", err)
	}
}

func TestDailyStats(t *testing.T) {
	st := memory.New()
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	// Two paid orders today count toward sales; yesterday's paid order and
	// today's unpaid order do not.
	seedOrder(t, st, "48.14", models.StatusPaid, models.PaymentPaid, now)
	seedOrder(t, st, "20.39", models.StatusPaid, models.PaymentPaid, now)
	seedOrder(t, st, "99.99", models.StatusPaid, models.PaymentPaid, yesterday)
	seedOrder(t, st, "12.50", models.StatusPending, models.PaymentPending, now)
	seedOrder(t, st, "24.00", models.StatusPreparing, models.PaymentPending, now)
	seedOrder(t, st, "16.50", models.StatusCancelled, models.PaymentPending, now)

	seedStaff(t, st, "active-1", true)
	seedStaff(t, st, "active-2", true)
	seedStaff(t, st, "inactive", false)

	agg := New(st)
	got, err := agg.DailyStats(context.Background())
	if err != nil {
		t.Fatalf("daily stats: %v", err)
	}

	if got.DailySales.String() != "68.53" {
		t.Errorf("dailySales = %s, want 68.53", got.DailySales)
	}
	if got.ActiveOrders != 2 {
		t.Errorf("activeOrders = %d, want 2", got.ActiveOrders)
	}
	if got.StaffOnline != 2 {
		t.Errorf("staffOnline = %d, want 2", got.StaffOnline)
	}
	if got.TableOccupancy != 0 {
		t.Errorf("tableOccupancy = %d, want 0 with no tables", got.TableOccupancy)
	}
}

func TestTableOccupancyRounding(t *testing.T) {
	tests := []struct {
		name     string
		occupied int
		total    int
		want     int
	}{
		{"8 of 15", 8, 15, 53},
		{"none", 0, 10, 0},
		{"all", 10, 10, 100},
		{"1 of 3", 1, 3, 33},
		{"2 of 3", 2, 3, 67},
		{"1 of 8", 1, 8, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := memory.New()
			for i := 0; i < tt.total; i++ {
				status := models.TableAvailable
				if i < tt.occupied {
					status = models.TableOccupied
				}
				seedTable(t, st, i+1, status)
			}

			got, err := New(st).DailyStats(context.Background())
			if err != nil {
				t.Fatalf("daily stats: %v", err)
			}
			if got.TableOccupancy != tt.want {
				t.Errorf("tableOccupancy = %d, want %d", got.TableOccupancy, tt.want)
			}
		})
	}
}
