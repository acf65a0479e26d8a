// Package stats recomputes the dashboard aggregates on demand from the
// current store contents. There is no separate ledger; at this scale an
// O(n) scan per request is fine.
package stats

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/store"
)

// Aggregator computes daily statistics across orders, tables and staff.
type Aggregator struct {
	store store.Store
}

// New creates a stats aggregator.
func New(st store.Store) *Aggregator {
	return &Aggregator{store: st}
}

// DailyStats returns:
//   - dailySales: sum of totals over orders created today (server-local
//     calendar day) whose payment status is paid
//   - activeOrders: orders not yet paid or cancelled, regardless of day
//   - tableOccupancy: occupied tables as an integer percentage of all
//     tables, rounded half-up
//   - staffOnline: staff with isActive set. This is a proxy for presence,
//     not a real session signal.
func (a *Aggregator) DailyStats(ctx context.Context) (models.DailyStats, error) {
	orders, err := a.store.ListOrders(ctx)
	if err != nil {
		return models.DailyStats{}, err
	}

	dailySales := decimal.Zero
	activeOrders := 0
	for _, order := range orders {
		if !order.Status.IsTerminal() {
			activeOrders++
		}
		if order.PaymentStatus == models.PaymentPaid && isToday(order.CreatedAt) {
			dailySales = dailySales.Add(order.Total.Decimal)
		}
	}

	tables, err := a.store.ListTables(ctx)
	if err != nil {
		return models.DailyStats{}, err
	}
	occupancy := tableOccupancy(tables)

	staff, err := a.store.ListStaff(ctx)
	if err != nil {
		return models.DailyStats{}, err
	}
	staffOnline := 0
	for _, member := range staff {
		if member.IsActive {
			staffOnline++
		}
	}

	return models.DailyStats{
		DailySales:     models.NewMoney(dailySales),
		ActiveOrders:   activeOrders,
		TableOccupancy: occupancy,
		StaffOnline:    staffOnline,
	}, nil
}

// isToday compares calendar days in the server's local time zone.
func isToday(t time.Time) bool {
	y1, m1, d1 := t.Local().Date()
	y2, m2, d2 := time.Now().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// tableOccupancy returns round(100 * occupied / total) as an integer
// percentage; zero tables means zero occupancy.
func tableOccupancy(tables []models.Table) int {
	if len(tables) == 0 {
		return 0
	}
	occupied := 0
	for _, table := range tables {
		if table.Status == models.TableOccupied {
			occupied++
		}
	}
	pct := decimal.NewFromInt(int64(occupied * 100)).
		Div(decimal.NewFromInt(int64(len(tables)))).
		Round(0)
	return int(pct.IntPart())
}
