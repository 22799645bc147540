package pgsql

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const tableGenres = "genres"

var genreColumns = []any{"id", "name", "created_at", "updated_at"}

func (q *Queries) ListGenres(ctx context.Context, db DBTX) ([]Genre, error) {
	stmt := q.builder.From(tableGenres).Prepared(true).
		Select(genreColumns...).
		Order(goqu.C("name").Asc(), goqu.C("id").Asc())
	return queryMany[Genre](ctx, db, stmt)
}

func (q *Queries) FindGenreByID(ctx context.Context, db DBTX, id uuid.UUID) (Genre, error) {
	stmt := q.builder.From(tableGenres).Prepared(true).
		Select(genreColumns...).
		Where(goqu.C("id").Eq(id))
	return queryOne[Genre](ctx, db, stmt)
}

func (q *Queries) InsertGenre(ctx context.Context, db DBTX, g Genre) (Genre, error) {
	stmt := q.builder.Insert(tableGenres).Prepared(true).
		Rows(goqu.Record{
			"id":         g.ID,
			"name":       g.Name,
			"created_at": g.CreatedAt,
			"updated_at": g.UpdatedAt,
		}).
		Returning(genreColumns...)
	return queryOne[Genre](ctx, db, stmt)
}

func (q *Queries) UpdateGenre(ctx context.Context, db DBTX, g Genre) (Genre, error) {
	stmt := q.builder.Update(tableGenres).Prepared(true).
		Set(goqu.Record{
			"name":       g.Name,
			"updated_at": g.UpdatedAt,
		}).
		Where(goqu.C("id").Eq(g.ID)).
		Returning(genreColumns...)
	return queryOne[Genre](ctx, db, stmt)
}

func (q *Queries) DeleteGenre(ctx context.Context, db DBTX, id uuid.UUID) (Genre, error) {
	stmt := q.builder.Delete(tableGenres).Prepared(true).
		Where(goqu.C("id").Eq(id)).
		Returning(genreColumns...)
	return queryOne[Genre](ctx, db, stmt)
}
