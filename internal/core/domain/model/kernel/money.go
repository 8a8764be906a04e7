package kernel

import (
	"fmt"

	"foodmarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative is returned when constructing Money from a negative amount.
// The marketplace never deals in negative monetary values: prices, fees, and
// totals are all non-negative, and refunds are outside the core's scope.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount cannot be negative")

// Money is a value object that represents a non-negative monetary amount in
// currency minor units (e.g., kobo, cents). Storing money as an integer
// number of minor units keeps all arithmetic exact and byte-for-byte
// reproducible, which the checkout audit trail depends on. Binary
// floating-point is never used for money.
//
// Money is immutable: all arithmetic methods return a new value.
//
// Example usage:
//
//	price, _ := kernel.NewMoney(1000) // 10.00 in minor units of 100
//	total := price.MulInt(3)          // 3000
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor units.
// Returns ErrMoneyIsNegative if the amount is below zero.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount}, nil
}

// MustMoney creates a Money value from an amount in minor units and panics
// on a negative amount. Intended for constants and tests where the amount
// is known to be valid.
func MustMoney(amount int64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MulInt returns the Money value multiplied by a non-negative integer factor.
// Multiplication of minor units by a count is exact, so no rounding occurs.
func (m Money) MulInt(factor int64) Money {
	return Money{amount: m.amount * factor}
}

// MulFraction multiplies the amount by a decimal fraction and rounds the
// result half-up to whole minor units. This is the single rounding rule for
// all percentage-based charges (VAT in particular): rounding happens once,
// after the multiplication, never per intermediate step.
func (m Money) MulFraction(fraction decimal.Decimal) Money {
	product := decimal.NewFromInt(m.amount).Mul(fraction)
	// decimal.Round rounds half away from zero, which for non-negative
	// amounts is exactly round-half-up.
	return Money{amount: product.Round(0).IntPart()}
}

// Min returns the smaller of two Money values.
func (m Money) Min(other Money) Money {
	if other.amount < m.amount {
		return other
	}
	return m
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Cmp compares two Money values and returns -1, 0, or +1 when m is less
// than, equal to, or greater than other.
func (m Money) Cmp(other Money) int {
	switch {
	case m.amount < other.amount:
		return -1
	case m.amount > other.amount:
		return 1
	default:
		return 0
	}
}

// IsEqual compares two Money values for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount in minor units as a decimal string.
// Formatting to major units is a presentation concern and is left to callers.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
