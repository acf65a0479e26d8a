package pricing

import (
	"testing"

	"restaurant-pos/internal/models"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name              string
		lines             []Line
		wantSubtotal      string
		wantTax           string
		wantServiceCharge string
		wantTotal         string
	}{
		{
			name:              "empty input yields zeros",
			lines:             nil,
			wantSubtotal:      "0.00",
			wantTax:           "0.00",
			wantServiceCharge: "0.00",
			wantTotal:         "0.00",
		},
		{
			name: "burger and lava cake",
			lines: []Line{
				{Price: models.MustMoney("16.50"), Quantity: 2},
				{Price: models.MustMoney("9.50"), Quantity: 1},
			},
			wantSubtotal:      "42.50",
			wantTax:           "3.51",
			wantServiceCharge: "2.13",
			wantTotal:         "48.14",
		},
		{
			name: "single item",
			lines: []Line{
				{Price: models.MustMoney("18.00"), Quantity: 1},
			},
			wantSubtotal:      "18.00",
			wantTax:           "1.49",
			wantServiceCharge: "0.90",
			wantTotal:         "20.39",
		},
		{
			name: "many cheap lines accumulate without float drift",
			lines: []Line{
				{Price: models.MustMoney("0.10"), Quantity: 1},
				{Price: models.MustMoney("0.10"), Quantity: 1},
				{Price: models.MustMoney("0.10"), Quantity: 1},
				{Price: models.MustMoney("0.10"), Quantity: 1},
				{Price: models.MustMoney("0.10"), Quantity: 1},
				{Price: models.MustMoney("0.10"), Quantity: 1},
				{Price: models.MustMoney("0.10"), Quantity: 1},
				{Price: models.MustMoney("0.10"), Quantity: 1},
				{Price: models.MustMoney("0.10"), Quantity: 1},
				{Price: models.MustMoney("0.10"), Quantity: 1},
			},
			wantSubtotal:      "1.00",
			wantTax:           "0.08",
			wantServiceCharge: "0.05",
			wantTotal:         "1.13",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.lines)
			if got.Subtotal.String() != tt.wantSubtotal {
				t.Errorf("Subtotal = %s, want %s", got.Subtotal, tt.wantSubtotal)
			}
			if got.Tax.String() != tt.wantTax {
				t.Errorf("Tax = %s, want %s", got.Tax, tt.wantTax)
			}
			if got.ServiceCharge.String() != tt.wantServiceCharge {
				t.Errorf("ServiceCharge = %s, want %s", got.ServiceCharge, tt.wantServiceCharge)
			}
			if got.Total.String() != tt.wantTotal {
				t.Errorf("Total = %s, want %s", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestCalculateTotalIsSumOfParts(t *testing.T) {
	lines := []Line{
		{Price: models.MustMoney("24.00"), Quantity: 3},
		{Price: models.MustMoney("4.50"), Quantity: 2},
		{Price: models.MustMoney("12.50"), Quantity: 1},
	}

	got := Calculate(lines)

	sum := got.Subtotal.Add(got.Tax.Decimal).Add(got.ServiceCharge.Decimal)
	if !got.Total.Equal(sum) {
		t.Errorf("Total = %s, want subtotal+tax+serviceCharge = %s", got.Total, sum)
	}
}
