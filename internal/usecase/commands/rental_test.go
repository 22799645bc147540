//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vidly/internal/domain/movie"
	"vidly/internal/domain/rental"
	reqdto "vidly/internal/handler/dto/request"
	"vidly/internal/infra"
	"vidly/internal/pkg/clock"
	"vidly/internal/pkg/errs"
	"vidly/internal/usecase/commands"
	"vidly/internal/usecase/shared"
	"vidly/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRentalCommands_Create(t *testing.T) {
	ctx := context.Background()
	notFound := infra.WrapRepoErr("not found", nil, infra.KindNotFound)

	testCases := []struct {
		name      string
		setup     func(m *txMocks, cb *builder.CustomerBuilder, mb *builder.MovieBuilder)
		expectErr error
	}{
		{
			name: "success: rental issued and stock taken",
			setup: func(m *txMocks, cb *builder.CustomerBuilder, mb *builder.MovieBuilder) {
				m.customers.EXPECT().FindForShare(gomock.Any(), cb.ID).Return(cb.BuildDomain(), nil)
				m.movies.EXPECT().FindForUpdate(gomock.Any(), mb.ID).Return(mb.BuildDomain(), nil)
				m.rentals.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *rental.Rental) error {
						assert.True(t, r.IsOpen())
						assert.Equal(t, cb.BuildSnapshot(), r.Customer())
						assert.Equal(t, mb.ID, r.Movie().ID)
						return nil
					})
				m.movies.EXPECT().DecrementStock(gomock.Any(), mb.ID).Return(true, nil)
			},
		},
		{
			name: "error: unknown customer",
			setup: func(m *txMocks, cb *builder.CustomerBuilder, _ *builder.MovieBuilder) {
				m.customers.EXPECT().FindForShare(gomock.Any(), cb.ID).Return(nil, notFound)
			},
			expectErr: shared.ErrInvalidCustomer,
		},
		{
			name: "error: unknown movie",
			setup: func(m *txMocks, cb *builder.CustomerBuilder, mb *builder.MovieBuilder) {
				m.customers.EXPECT().FindForShare(gomock.Any(), cb.ID).Return(cb.BuildDomain(), nil)
				m.movies.EXPECT().FindForUpdate(gomock.Any(), mb.ID).Return(nil, notFound)
			},
			expectErr: shared.ErrInvalidMovie,
		},
		{
			name: "error: movie out of stock",
			setup: func(m *txMocks, cb *builder.CustomerBuilder, mb *builder.MovieBuilder) {
				mb.WithStock(0)
				m.customers.EXPECT().FindForShare(gomock.Any(), cb.ID).Return(cb.BuildDomain(), nil)
				m.movies.EXPECT().FindForUpdate(gomock.Any(), mb.ID).Return(mb.BuildDomain(), nil)
			},
			expectErr: movie.ErrOutOfStock,
		},
		{
			name: "error: pair already has an open rental",
			setup: func(m *txMocks, cb *builder.CustomerBuilder, mb *builder.MovieBuilder) {
				m.customers.EXPECT().FindForShare(gomock.Any(), cb.ID).Return(cb.BuildDomain(), nil)
				m.movies.EXPECT().FindForUpdate(gomock.Any(), mb.ID).Return(mb.BuildDomain(), nil)
				m.rentals.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("failed to create rental", &pgconn.PgError{Code: "23505", ConstraintName: "uq_rentals_open_pair"}))
			},
			expectErr: commands.ErrRentalAlreadyOpen,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			cb := builder.NewCustomerBuilder()
			mb := builder.NewMovieBuilder()
			tc.setup(m, cb, mb)

			uc := commands.NewRentalCommands(m.uow, fixedClock())
			rent, err := uc.Create(ctx, reqdto.RentalRequest{CustomerID: cb.ID.String(), MovieID: mb.ID.String()})

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr), "expected [%v] but got [%v]", tc.expectErr, err)
				assert.True(t, errs.Is(err, errs.ErrInvalidInput))
				assert.Nil(t, rent)
				return
			}
			require.NoError(t, err)
			assert.True(t, fixedNow.Equal(rent.DateOut()))
			assert.Nil(t, rent.RentalFee())
		})
	}
}

func TestRentalCommands_Create_DateOutAtStoredPrecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 8, 9, 0, 0, 987654321, time.UTC)
	m := newTxMocks(ctrl)
	cb := builder.NewCustomerBuilder()
	mb := builder.NewMovieBuilder()
	m.customers.EXPECT().FindForShare(gomock.Any(), cb.ID).Return(cb.BuildDomain(), nil)
	m.movies.EXPECT().FindForUpdate(gomock.Any(), mb.ID).Return(mb.BuildDomain(), nil)
	m.rentals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.movies.EXPECT().DecrementStock(gomock.Any(), mb.ID).Return(true, nil)

	uc := commands.NewRentalCommands(m.uow, clock.NewMockClock(now))
	rent, err := uc.Create(context.Background(), reqdto.RentalRequest{CustomerID: cb.ID.String(), MovieID: mb.ID.String()})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 8, 9, 0, 0, 987654000, time.UTC), rent.DateOut())
}
