//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"vidly/internal/pkg/clock"
	"vidly/internal/usecase/shared"
	sharedmock "vidly/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC)

type txMocks struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	genres    *sharedmock.MockGenreRepository
	movies    *sharedmock.MockMovieRepository
	customers *sharedmock.MockCustomerRepository
	rentals   *sharedmock.MockRentalRepository
	users     *sharedmock.MockUserRepository
}

// newTxMocks wires a unit of work whose Within runs fn against the mocked tx.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		genres:    sharedmock.NewMockGenreRepository(ctrl),
		movies:    sharedmock.NewMockMovieRepository(ctrl),
		customers: sharedmock.NewMockCustomerRepository(ctrl),
		rentals:   sharedmock.NewMockRentalRepository(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Genres().Return(m.genres).AnyTimes()
	m.tx.EXPECT().Movies().Return(m.movies).AnyTimes()
	m.tx.EXPECT().Customers().Return(m.customers).AnyTimes()
	m.tx.EXPECT().Rentals().Return(m.rentals).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	return m
}

func fixedClock() clock.Clock {
	return clock.NewMockClock(fixedNow)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
