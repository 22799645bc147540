package pgconv

import (
	"errors"
	"math"

	"github.com/jackc/pgx/v5"
)

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IntToInt32 clamps to the int32 range.
func IntToInt32(v int) int32 {
	return Int64ToInt32(int64(v))
}

// Int64ToInt32 clamps to the int32 range.
func Int64ToInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
