package readstore

import (
	"context"

	"vidly/internal/infra"
	"vidly/internal/infra/pgsql"
	"vidly/internal/pkg/pgconv"
	"vidly/internal/usecase/queries"

	"github.com/google/uuid"
)

type GenreReadQueries interface {
	ListGenres(ctx context.Context, db pgsql.DBTX) ([]pgsql.Genre, error)
	FindGenreByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Genre, error)
}

type GenreReadStore struct {
	queries GenreReadQueries
	db      pgsql.DBTX
}

func NewGenreReadStore(queries GenreReadQueries, db pgsql.DBTX) *GenreReadStore {
	return &GenreReadStore{queries: queries, db: db}
}

func (r *GenreReadStore) FindAll(ctx context.Context) ([]*queries.GenreView, error) {
	rows, err := r.queries.ListGenres(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list genres", err)
	}

	views := make([]*queries.GenreView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toGenreView(row))
	}
	return views, nil
}

func (r *GenreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GenreView, error) {
	row, err := r.queries.FindGenreByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("genre not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find genre", err)
	}
	return toGenreView(row), nil
}

func toGenreView(row pgsql.Genre) *queries.GenreView {
	return &queries.GenreView{ID: row.ID, Name: row.Name}
}
