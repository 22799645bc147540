//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"vidly/internal/infra"
	"vidly/internal/infra/pgsql"
	"vidly/internal/infra/repository"
	"vidly/tests/common/builder"
	repositorymock "vidly/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMovieRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	mb := builder.NewMovieBuilder().WithStock(3).WithRateCents(250)

	testCases := []struct {
		name       string
		row        pgsql.Movie
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: movie locked", row: mb.BuildInfra()},
		{name: "error: movie not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMovieWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMovieRepository(mockQueries, mockDB)

			mockQueries.EXPECT().FindMovieForUpdate(ctx, mockDB, mb.ID).Return(tc.row, tc.queryErr)

			m, err := repo.FindForUpdate(ctx, mb.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, m.NumberInStock())
			assert.Equal(t, int64(250), m.DailyRentalRate().Cents())
			assert.Equal(t, mb.Genre, m.Genre())
		})
	}
}

func TestMovieRepository_Stock(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		decrement bool
		affected  int64
		queryErr  error
		expectOK  bool
		expectErr bool
	}{
		{name: "increment touches the movie", affected: 1, expectOK: true},
		{name: "increment on a deleted movie", affected: 0, expectOK: false},
		{name: "decrement takes a copy", decrement: true, affected: 1, expectOK: true},
		{name: "decrement with nothing left", decrement: true, affected: 0, expectOK: false},
		{name: "database error", affected: 0, queryErr: errors.New("database connection error"), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMovieWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMovieRepository(mockQueries, mockDB)
			id := uuid.New()

			var (
				ok  bool
				err error
			)
			if tc.decrement {
				mockQueries.EXPECT().DecrementMovieStock(ctx, mockDB, id).Return(tc.affected, tc.queryErr)
				ok, err = repo.DecrementStock(ctx, id)
			} else {
				mockQueries.EXPECT().IncrementMovieStock(ctx, mockDB, id).Return(tc.affected, tc.queryErr)
				ok, err = repo.IncrementStock(ctx, id)
			}

			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectOK, ok)
		})
	}
}
