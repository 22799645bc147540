//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"vidly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	base := errs.New("rental already returned")
	marked := errs.Mark(base, errs.ErrAlreadyProcessed)

	assert.True(t, errs.Is(marked, errs.ErrAlreadyProcessed))
	assert.True(t, errors.Is(marked, base))
	assert.False(t, errs.Is(marked, errs.ErrNotFound))

	assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
}

func TestNewMarked(t *testing.T) {
	err := errs.NewMarked("genre not found", errs.ErrNotFound)

	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.Equal(t, "genre not found", err.Error())
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	err := errs.Wrap(errs.ErrInvalidInput, "parse body")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
	assert.Equal(t, "parse body: invalid input", err.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "boom")
}
