//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"vidly/internal/infra"
	"vidly/internal/infra/pgsql"
	"vidly/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRentalReadQueries struct {
	mock.Mock
}

func (m *MockRentalReadQueries) ListRentals(ctx context.Context, db pgsql.DBTX) ([]pgsql.Rental, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]pgsql.Rental), args.Error(1)
}

func (m *MockRentalReadQueries) FindRentalByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Rental, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgsql.Rental), args.Error(1)
}

func TestRentalReadStore_FindByID(t *testing.T) {
	dateOut := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	open := builder.NewRentalBuilder().WithDateOut(dateOut)
	closed := builder.NewRentalBuilder().WithDateOut(dateOut).Returned(dateOut.Add(72*time.Hour), 600)

	tests := []struct {
		name      string
		rental    *builder.RentalBuilder
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "open rental has no fee", rental: open},
		{name: "closed rental carries date returned and fee", rental: closed},
		{name: "not found", rental: open, mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", rental: open, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tt.rental.BuildInfra()
			if tt.mockError != nil {
				row = pgsql.Rental{}
			}

			mockQueries := new(MockRentalReadQueries)
			mockQueries.On("FindRentalByID", mock.Anything, mock.Anything, tt.rental.ID).Return(row, tt.mockError)

			view, err := NewRentalReadStore(mockQueries, nil).FindByID(context.Background(), tt.rental.ID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				if diff := cmp.Diff(tt.rental.BuildView(), view); diff != "" {
					t.Errorf("RentalView mismatch (-want +got):\n%s", diff)
				}
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestRentalReadStore_FindAll_CorruptDocument(t *testing.T) {
	row := builder.NewRentalBuilder().BuildInfra()
	row.Movie = []byte(`{"_id":`)

	mockQueries := new(MockRentalReadQueries)
	mockQueries.On("ListRentals", mock.Anything, mock.Anything).Return([]pgsql.Rental{row}, nil)

	views, err := NewRentalReadStore(mockQueries, nil).FindAll(context.Background())

	require.Error(t, err)
	assert.Nil(t, views)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestMovieReadStore_FindAll(t *testing.T) {
	movies := []*builder.MovieBuilder{
		builder.NewMovieBuilder().WithRateCents(150),
		builder.NewMovieBuilder().WithStock(0),
	}
	rows := make([]pgsql.Movie, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, m.BuildInfra())
	}

	mockQueries := new(MockMovieReadQueries)
	mockQueries.On("ListMovies", mock.Anything, mock.Anything).Return(rows, nil)

	views, err := NewMovieReadStore(mockQueries, nil).FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.InDelta(t, 1.5, views[0].DailyRentalRate, 0.0001)
	assert.Equal(t, 0, views[1].NumberInStock)
	assert.Equal(t, movies[0].Genre.Name, views[0].Genre.Name)
	mockQueries.AssertExpectations(t)
}

type MockMovieReadQueries struct {
	mock.Mock
}

func (m *MockMovieReadQueries) ListMovies(ctx context.Context, db pgsql.DBTX) ([]pgsql.Movie, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]pgsql.Movie), args.Error(1)
}

func (m *MockMovieReadQueries) FindMovieByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Movie, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgsql.Movie), args.Error(1)
}
