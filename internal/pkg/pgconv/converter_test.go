//go:build unit

package pgconv_test

import (
	"fmt"
	"math"
	"testing"

	"vidly/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("find genre: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
	assert.False(t, pgconv.IsNoRows(nil))
}

func TestInt64ToInt32(t *testing.T) {
	tests := []struct {
		in   int64
		want int32
	}{
		{in: 0, want: 0},
		{in: 25500, want: 25500},
		{in: math.MaxInt32 + 1, want: math.MaxInt32},
		{in: math.MinInt32 - 1, want: math.MinInt32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pgconv.Int64ToInt32(tt.in), "input %d", tt.in)
	}
	assert.Equal(t, int32(255), pgconv.IntToInt32(255))
}
