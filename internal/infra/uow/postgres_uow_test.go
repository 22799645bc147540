//go:build unit

package uow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"vidly/internal/infra/pgsql"
	"vidly/internal/infra/uow"
	"vidly/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	err      error
	begins   int
	isoLevel pgx.TxIsoLevel
}

func (f *fakeBeginner) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	f.begins++
	f.isoLevel = opts.IsoLevel
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}

func newUoW(b *fakeBeginner) shared.UnitOfWork {
	return uow.NewPostgresUoW(b, pgsql.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWithin(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when fn succeeds", func(t *testing.T) {
		b := &fakeBeginner{tx: &fakeTx{}}

		err := newUoW(b).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			assert.NotNil(t, tx.Rentals())
			assert.Same(t, tx.Movies(), tx.Movies())
			return nil
		})

		require.NoError(t, err)
		assert.True(t, b.tx.committed)
		assert.False(t, b.tx.rolledBack)
		assert.Equal(t, pgx.ReadCommitted, b.isoLevel)
	})

	t.Run("rolls back and runs once when fn fails", func(t *testing.T) {
		b := &fakeBeginner{tx: &fakeTx{}}
		boom := errors.New("boom")
		calls := 0

		err := newUoW(b).Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			return boom
		})

		require.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, b.begins)
		assert.True(t, b.tx.rolledBack)
		assert.False(t, b.tx.committed)
	})

	t.Run("begin failure never calls fn", func(t *testing.T) {
		b := &fakeBeginner{err: errors.New("pool closed")}

		err := newUoW(b).Within(ctx, func(context.Context, shared.Tx) error {
			t.Fatal("fn must not run")
			return nil
		})

		require.Error(t, err)
	})

	t.Run("commit failure is reported", func(t *testing.T) {
		commitErr := errors.New("connection reset")
		b := &fakeBeginner{tx: &fakeTx{commitErr: commitErr}}

		err := newUoW(b).Within(ctx, func(context.Context, shared.Tx) error { return nil })

		require.ErrorIs(t, err, commitErr)
		assert.True(t, b.tx.rolledBack)
	})
}
