package money

import (
	"math"

	"vidly/internal/pkg/errs"
)

var ErrNegativeAmount = errs.NewMarked("money cannot be negative", errs.ErrInvalidInput)

// Money is an amount in cents. The API exposes it as a decimal with two places.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromDecimal rounds to the nearest cent.
func FromDecimal(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrNegativeAmount
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
