package rental

import (
	"time"

	"vidly/internal/domain/money"
)

const day = 24 * time.Hour

type FeeCalculator interface {
	CalculateFee(dateOut, returnedAt time.Time, dailyRate money.Money) money.Money
}

// DailyFeeCalculator bills whole elapsed days; a same-day return is one day.
type DailyFeeCalculator struct {
	MinDays int64
}

func NewDailyFeeCalculator() *DailyFeeCalculator {
	return &DailyFeeCalculator{MinDays: 1}
}

func (c *DailyFeeCalculator) CalculateFee(dateOut, returnedAt time.Time, dailyRate money.Money) money.Money {
	return dailyRate.Times(c.RentalDays(dateOut, returnedAt))
}

func (c *DailyFeeCalculator) RentalDays(dateOut, returnedAt time.Time) int64 {
	days := int64(returnedAt.Sub(dateOut) / day)
	return max(days, c.MinDays)
}
