//go:build unit

package rental_test

import (
	"testing"
	"time"

	"vidly/internal/domain/money"
	"vidly/internal/domain/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyFeeCalculator(t *testing.T) {
	calc := rental.NewDailyFeeCalculator()
	out := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rate, err := money.NewMoney(200)
	require.NoError(t, err)

	cases := []struct {
		name     string
		returned time.Time
		wantDays int64
	}{
		{name: "7日ちょうど", returned: out.Add(7 * 24 * time.Hour), wantDays: 7},
		{name: "同日返却は1日", returned: out.Add(3 * time.Hour), wantDays: 1},
		{name: "即時返却は1日", returned: out, wantDays: 1},
		{name: "7日と数秒は7日", returned: out.Add(7*24*time.Hour + 3*time.Second), wantDays: 7},
		{name: "8日の直前は7日", returned: out.Add(8*24*time.Hour - time.Millisecond), wantDays: 7},
		{name: "1日と1秒は1日", returned: out.Add(24*time.Hour + time.Second), wantDays: 1},
		{name: "2日ちょうどは2日", returned: out.Add(48 * time.Hour), wantDays: 2},
		{name: "時計が戻っても1日", returned: out.Add(-time.Hour), wantDays: 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.wantDays, calc.RentalDays(out, c.returned))
			assert.Equal(t, c.wantDays*200, calc.CalculateFee(out, c.returned, rate).Cents())
		})
	}
}
