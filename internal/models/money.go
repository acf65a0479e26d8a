package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point decimal amount with two places. It marshals to a
// JSON string like "16.50" so totals never drift through float encoding
// on the wire.
type Money struct {
	decimal.Decimal
}

// NewMoney rounds d half-up to two decimal places.
func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

// MoneyFromString parses a fixed-point string such as "16.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money value %q: %w", s, err)
	}
	return NewMoney(d), nil
}

// MustMoney parses a fixed-point string and panics on failure. Test and
// seed data helper.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{decimal.Zero}
}

func (m Money) String() string {
	return m.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.StringFixed(2))), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if s == "" || s == "null" {
		m.Decimal = decimal.Zero
		return nil
	}
	parsed, err := MoneyFromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan implements sql.Scanner so NUMERIC columns scan directly into Money.
func (m *Money) Scan(value interface{}) error {
	if value == nil {
		m.Decimal = decimal.Zero
		return nil
	}
	return m.Decimal.Scan(value)
}

// Value implements driver.Valuer; money is stored as its fixed-point text.
func (m Money) Value() (driver.Value, error) {
	return m.StringFixed(2), nil
}
