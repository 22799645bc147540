package repository

import (
	"context"

	"vidly/internal/domain/movie"
	"vidly/internal/infra"
	"vidly/internal/infra/pgsql"
	"vidly/internal/infra/repository/converter"
	"vidly/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MovieWriteQueries interface {
	FindMovieByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Movie, error)
	FindMovieForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Movie, error)
	InsertMovie(ctx context.Context, db pgsql.DBTX, m pgsql.Movie) (pgsql.Movie, error)
	UpdateMovie(ctx context.Context, db pgsql.DBTX, m pgsql.Movie) (pgsql.Movie, error)
	DeleteMovie(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Movie, error)
	IncrementMovieStock(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (int64, error)
	DecrementMovieStock(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (int64, error)
}

type MovieRepository struct {
	queries MovieWriteQueries
	db      pgsql.DBTX
}

func NewMovieRepository(queries MovieWriteQueries, db pgsql.DBTX) *MovieRepository {
	return &MovieRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*movie.Movie, error) {
	row, err := r.queries.FindMovieByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("movie not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find movie", err)
	}
	return fromMovieRow(row)
}

func (r *MovieRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*movie.Movie, error) {
	row, err := r.queries.FindMovieForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("movie not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock movie", err)
	}
	return fromMovieRow(row)
}

func (r *MovieRepository) Create(ctx context.Context, m *movie.Movie) error {
	row, err := converter.MovieToRow(m)
	if err != nil {
		return infra.WrapRepoErr("failed to convert movie", err)
	}
	if _, err := r.queries.InsertMovie(ctx, r.db, row); err != nil {
		return infra.WrapRepoErr("failed to create movie", err)
	}
	return nil
}

func (r *MovieRepository) Update(ctx context.Context, m *movie.Movie) error {
	row, err := converter.MovieToRow(m)
	if err != nil {
		return infra.WrapRepoErr("failed to convert movie", err)
	}
	if _, err := r.queries.UpdateMovie(ctx, r.db, row); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("movie not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update movie", err)
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id uuid.UUID) (*movie.Movie, error) {
	row, err := r.queries.DeleteMovie(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("movie not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete movie", err)
	}
	return fromMovieRow(row)
}

// IncrementStock reports false when the movie no longer exists.
func (r *MovieRepository) IncrementStock(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.queries.IncrementMovieStock(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment movie stock", err)
	}
	return n > 0, nil
}

// DecrementStock reports false when there was no copy left to take.
func (r *MovieRepository) DecrementStock(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.queries.DecrementMovieStock(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement movie stock", err)
	}
	return n > 0, nil
}

func fromMovieRow(row pgsql.Movie) (*movie.Movie, error) {
	m, err := converter.MovieFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert movie row", err)
	}
	return m, nil
}
