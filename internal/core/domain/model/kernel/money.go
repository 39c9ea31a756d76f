package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero Money is used where an amount is mandatory.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("amount must be created via NewMoney or MoneyFromString")

// Money is a non-negative amount with two decimal places. Offer amounts and
// revenue figures are Money; the currency is implicit (USD).
type Money struct {
	amount      decimal.Decimal
	constructed bool
}

// NewMoney builds a Money from a decimal, rounding half away from zero to cents.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", "unbounded")
	}
	return Money{amount: amount.Round(2), constructed: true}, nil
}

// MoneyFromString parses a decimal string such as "450.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoney is NewMoney for literals in tests and fixtures; it panics on a negative amount.
func MustMoney(amount float64) Money {
	m, err := NewMoney(decimal.NewFromFloat(amount))
	if err != nil {
		panic(fmt.Sprintf("kernel.MustMoney(%v): %v", amount, err))
	}
	return m
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, constructed: true}
}

// Decimal exposes the underlying value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares amounts, ignoring trailing zeros.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Sub returns m - other. The result may be negative, so it is returned as a decimal.
func (m Money) Sub(other Money) decimal.Decimal {
	return m.amount.Sub(other.amount)
}

// String formats with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate fails for the zero value.
func (m Money) Validate() error {
	if !m.constructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
