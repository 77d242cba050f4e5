package kernel

import (
	"fmt"
	"math"

	"workorders/internal/pkg/errs"
)

// ErrMoneyIsNegative indicates an attempt to construct a negative monetary amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object representing a non-negative monetary amount with
// two-decimal precision. Amounts are stored as integer cents, so arithmetic
// is exact and every value is already rounded to two decimal places.
//
// The zero value is a valid amount of 0.00.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from integer cents.
// Returns ErrMoneyIsNegative for negative inputs.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money value from a floating-point amount,
// rounding half away from zero to two decimal places.
// Returns ErrMoneyIsNegative for negative inputs.
func NewMoneyFromFloat(amount float64) (Money, error) {
	cents := int64(math.Round(amount * 100))
	return NewMoneyFromCents(cents)
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a floating-point number of currency units.
// Intended for read models and display, not for further arithmetic.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two amounts.
// Returns ErrMoneyIsNegative when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.cents > m.cents {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: m.cents - other.cents}, nil
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// Returns ErrMoneyIsNegative for negative factors and an out-of-range error
// when the product would not fit the cents representation.
func (m Money) MulInt(n int) (Money, error) {
	if n < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	if n > 0 && m.cents > math.MaxInt64/int64(n) {
		return Money{}, errs.NewValueIsOutOfRangeError("multiplication factor", n, 0, math.MaxInt64/max(m.cents, 1))
	}
	return Money{cents: m.cents * int64(n)}, nil
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsPositive reports whether the amount is greater than 0.00.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// Less reports whether m is strictly smaller than other.
func (m Money) Less(other Money) bool {
	return m.cents < other.cents
}

// String formats the amount with exactly two decimal places, e.g. "1600.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
