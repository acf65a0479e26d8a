package pricing

import (
	"github.com/shopspring/decimal"

	"restaurant-pos/internal/models"
)

// Tax and service charge rates applied to every order.
var (
	taxRate           = decimal.RequireFromString("0.0825")
	serviceChargeRate = decimal.RequireFromString("0.05")
)

// Line is a (unit price, quantity) pair fed into the calculator.
type Line struct {
	Price    models.Money
	Quantity int
}

// Totals holds the four computed charges, each independently rounded
// half-up to two decimal places.
type Totals struct {
	Subtotal      models.Money
	Tax           models.Money
	ServiceCharge models.Money
	Total         models.Money
}

// Calculate computes subtotal, tax, service charge and total for the given
// lines. It is pure: callers must store the result at order creation and
// re-read the stored values afterwards, so a receipt never changes after
// payment. Empty input yields all zeros.
func Calculate(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	serviceCharge := subtotal.Mul(serviceChargeRate).Round(2)
	total := subtotal.Add(tax).Add(serviceCharge)

	return Totals{
		Subtotal:      models.NewMoney(subtotal),
		Tax:           models.NewMoney(tax),
		ServiceCharge: models.NewMoney(serviceCharge),
		Total:         models.NewMoney(total),
	}
}
