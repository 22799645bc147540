package readstore

import (
	"context"

	"vidly/internal/domain/money"
	"vidly/internal/infra"
	"vidly/internal/infra/document"
	"vidly/internal/infra/pgsql"
	"vidly/internal/pkg/pgconv"
	"vidly/internal/usecase/queries"

	"github.com/google/uuid"
)

type MovieReadQueries interface {
	ListMovies(ctx context.Context, db pgsql.DBTX) ([]pgsql.Movie, error)
	FindMovieByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Movie, error)
}

type MovieReadStore struct {
	queries MovieReadQueries
	db      pgsql.DBTX
}

func NewMovieReadStore(queries MovieReadQueries, db pgsql.DBTX) *MovieReadStore {
	return &MovieReadStore{queries: queries, db: db}
}

func (r *MovieReadStore) FindAll(ctx context.Context) ([]*queries.MovieView, error) {
	rows, err := r.queries.ListMovies(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list movies", err)
	}

	views := make([]*queries.MovieView, 0, len(rows))
	for _, row := range rows {
		view, err := toMovieView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *MovieReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MovieView, error) {
	row, err := r.queries.FindMovieByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("movie not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find movie", err)
	}
	return toMovieView(row)
}

func toMovieView(row pgsql.Movie) (*queries.MovieView, error) {
	g, err := document.DecodeGenre(row.Genre)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode movie genre", err)
	}
	rate, err := money.NewMoney(int64(row.DailyRentalRateCents))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid movie rate", err)
	}
	return &queries.MovieView{
		ID:              row.ID,
		Title:           row.Title,
		Genre:           queries.GenreView{ID: g.ID, Name: g.Name},
		NumberInStock:   int(row.NumberInStock),
		DailyRentalRate: rate.Decimal(),
	}, nil
}
