//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"vidly/internal/infra"
	"vidly/internal/usecase/queries"
	"vidly/internal/usecase/shared"
	"vidly/tests/common/builder"
	queriesmock "vidly/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStoreDown = errors.New("store down")

func notFound() error {
	return infra.WrapRepoErr("row not found", pgx.ErrNoRows, infra.KindNotFound)
}

func TestGetByID_MapsNotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name     string
		call     func(ctrl *gomock.Controller, storeErr error) error
		sentinel error
	}{
		{
			name: "genre",
			call: func(ctrl *gomock.Controller, storeErr error) error {
				store := queriesmock.NewMockGenreReadStore(ctrl)
				store.EXPECT().FindByID(ctx, id).Return(nil, storeErr)
				_, err := queries.NewGenreQueries(store).GetByID(ctx, id)
				return err
			},
			sentinel: shared.ErrGenreNotFound,
		},
		{
			name: "movie",
			call: func(ctrl *gomock.Controller, storeErr error) error {
				store := queriesmock.NewMockMovieReadStore(ctrl)
				store.EXPECT().FindByID(ctx, id).Return(nil, storeErr)
				_, err := queries.NewMovieQueries(store).GetByID(ctx, id)
				return err
			},
			sentinel: shared.ErrMovieNotFound,
		},
		{
			name: "customer",
			call: func(ctrl *gomock.Controller, storeErr error) error {
				store := queriesmock.NewMockCustomerReadStore(ctrl)
				store.EXPECT().FindByID(ctx, id).Return(nil, storeErr)
				_, err := queries.NewCustomerQueries(store).GetByID(ctx, id)
				return err
			},
			sentinel: shared.ErrCustomerNotFound,
		},
		{
			name: "rental",
			call: func(ctrl *gomock.Controller, storeErr error) error {
				store := queriesmock.NewMockRentalReadStore(ctrl)
				store.EXPECT().FindByID(ctx, id).Return(nil, storeErr)
				_, err := queries.NewRentalQueries(store).GetByID(ctx, id)
				return err
			},
			sentinel: shared.ErrRentalNotFound,
		},
		{
			name: "current user",
			call: func(ctrl *gomock.Controller, storeErr error) error {
				store := queriesmock.NewMockUserReadStore(ctrl)
				store.EXPECT().FindByID(ctx, id).Return(nil, storeErr)
				_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, id)
				return err
			},
			sentinel: shared.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name+": not found becomes the sentinel", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			err := tc.call(ctrl, notFound())
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)
		})

		t.Run(tc.name+": other failures pass through", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			err := tc.call(ctrl, errStoreDown)
			require.Error(t, err)
			assert.ErrorIs(t, err, errStoreDown)
			assert.NotErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestList_ReturnsStoreOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	views := []*queries.MovieView{
		builder.NewMovieBuilder().BuildView(),
		builder.NewMovieBuilder().WithStock(0).BuildView(),
	}
	store := queriesmock.NewMockMovieReadStore(ctrl)
	store.EXPECT().FindAll(ctx).Return(views, nil)

	got, err := queries.NewMovieQueries(store).List(ctx)

	require.NoError(t, err)
	assert.Equal(t, views, got)
}
