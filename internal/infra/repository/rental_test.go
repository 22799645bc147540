//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vidly/internal/domain/rental"
	"vidly/internal/infra"
	"vidly/internal/infra/pgsql"
	"vidly/internal/infra/repository"
	"vidly/tests/common/builder"
	repositorymock "vidly/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// LookupForUpdate Tests
// =============================================================================

func TestRentalRepository_LookupForUpdate(t *testing.T) {
	ctx := context.Background()
	dateOut := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		row        pgsql.Rental
		queryErr   error
		expectOpen bool
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "success: open rental",
			row:        builder.NewRentalBuilder().WithDateOut(dateOut).BuildInfra(),
			expectOpen: true,
		},
		{
			name:       "success: latest closed rental",
			row:        builder.NewRentalBuilder().WithDateOut(dateOut).Returned(dateOut.Add(24*time.Hour), 200).BuildInfra(),
			expectOpen: false,
		},
		{
			name:       "error: no rental for the pair",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRentalRepository(mockQueries, mockDB)

			customerID, movieID := uuid.New(), uuid.New()
			mockQueries.EXPECT().LookupRentalForUpdate(ctx, mockDB, customerID, movieID).Return(tc.row, tc.queryErr)

			actual, err := repo.LookupForUpdate(ctx, customerID, movieID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.row.ID, actual.ID())
			assert.Equal(t, tc.expectOpen, actual.IsOpen())
			assert.True(t, dateOut.Equal(actual.DateOut()))
		})
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestRentalRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: rental inserted with snapshots",
		},
		{
			name:       "error: pair already has an open rental",
			queryErr:   &pgconn.PgError{Code: "23505", ConstraintName: "uq_rentals_open_pair"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRentalRepository(mockQueries, mockDB)

			rent := builder.NewRentalBuilder().BuildDomain()
			mockQueries.EXPECT().InsertRental(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgsql.DBTX, row pgsql.Rental) (pgsql.Rental, error) {
					assert.Equal(t, rent.ID(), row.ID)
					assert.Equal(t, rent.Customer().ID, row.CustomerID)
					assert.Equal(t, rent.Movie().ID, row.MovieID)
					assert.NotEmpty(t, row.Customer)
					assert.NotEmpty(t, row.Movie)
					assert.Nil(t, row.DateReturned)
					assert.Nil(t, row.RentalFeeCents)
					return row, tc.queryErr
				})

			err := repo.Create(ctx, rent)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestRentalRepository_Close(t *testing.T) {
	ctx := context.Background()
	dateOut := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	returnedAt := dateOut.Add(7 * 24 * time.Hour)

	testCases := []struct {
		name         string
		affected     int64
		queryErr     error
		expectClosed bool
		expectKind   infra.RepositoryErrorKind
	}{
		{
			name:         "success: open rental closed",
			affected:     1,
			expectClosed: true,
		},
		{
			name:         "lost race: rental already closed in the store",
			affected:     0,
			expectClosed: false,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRentalRepository(mockQueries, mockDB)

			rent := builder.NewRentalBuilder().WithDateOut(dateOut).BuildDomain()
			require.NoError(t, rent.Return(returnedAt, rental.NewDailyFeeCalculator()))

			mockQueries.EXPECT().CloseRental(ctx, mockDB, rent.ID(), returnedAt, int64(1400)).Return(tc.affected, tc.queryErr)

			closed, err := repo.Close(ctx, rent)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.False(t, closed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectClosed, closed)
		})
	}
}

func TestRentalRepository_Close_OpenRentalRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
	repo := repository.NewRentalRepository(mockQueries, &mockDBTX{})

	closed, err := repo.Close(context.Background(), builder.NewRentalBuilder().BuildDomain())

	require.Error(t, err)
	assert.False(t, closed)
	assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
}
