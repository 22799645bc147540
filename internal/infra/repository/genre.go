package repository

import (
	"context"

	"vidly/internal/domain/genre"
	"vidly/internal/infra"
	"vidly/internal/infra/pgsql"
	"vidly/internal/infra/repository/converter"
	"vidly/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GenreWriteQueries interface {
	FindGenreByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Genre, error)
	InsertGenre(ctx context.Context, db pgsql.DBTX, g pgsql.Genre) (pgsql.Genre, error)
	UpdateGenre(ctx context.Context, db pgsql.DBTX, g pgsql.Genre) (pgsql.Genre, error)
	DeleteGenre(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Genre, error)
}

type GenreRepository struct {
	queries GenreWriteQueries
	db      pgsql.DBTX
}

func NewGenreRepository(queries GenreWriteQueries, db pgsql.DBTX) *GenreRepository {
	return &GenreRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	row, err := r.queries.FindGenreByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("genre not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find genre", err)
	}
	return converter.GenreFromRow(row), nil
}

func (r *GenreRepository) Create(ctx context.Context, g *genre.Genre) error {
	if _, err := r.queries.InsertGenre(ctx, r.db, converter.GenreToRow(g)); err != nil {
		return infra.WrapRepoErr("failed to create genre", err)
	}
	return nil
}

func (r *GenreRepository) Update(ctx context.Context, g *genre.Genre) error {
	if _, err := r.queries.UpdateGenre(ctx, r.db, converter.GenreToRow(g)); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("genre not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update genre", err)
	}
	return nil
}

func (r *GenreRepository) Delete(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	row, err := r.queries.DeleteGenre(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("genre not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete genre", err)
	}
	return converter.GenreFromRow(row), nil
}
