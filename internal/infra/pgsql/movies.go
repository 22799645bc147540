package pgsql

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const tableMovies = "movies"

var movieColumns = []any{
	"id", "title", "genre_id", "genre", "number_in_stock", "daily_rental_rate_cents", "created_at", "updated_at",
}

func (q *Queries) ListMovies(ctx context.Context, db DBTX) ([]Movie, error) {
	stmt := q.builder.From(tableMovies).Prepared(true).
		Select(movieColumns...).
		Order(goqu.C("title").Asc(), goqu.C("id").Asc())
	return queryMany[Movie](ctx, db, stmt)
}

func (q *Queries) FindMovieByID(ctx context.Context, db DBTX, id uuid.UUID) (Movie, error) {
	stmt := q.builder.From(tableMovies).Prepared(true).
		Select(movieColumns...).
		Where(goqu.C("id").Eq(id))
	return queryOne[Movie](ctx, db, stmt)
}

// FindMovieForUpdate locks the row so the stock check and decrement see the same value.
func (q *Queries) FindMovieForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Movie, error) {
	stmt := q.builder.From(tableMovies).Prepared(true).
		Select(movieColumns...).
		Where(goqu.C("id").Eq(id)).
		ForUpdate(exp.Wait)
	return queryOne[Movie](ctx, db, stmt)
}

func (q *Queries) InsertMovie(ctx context.Context, db DBTX, m Movie) (Movie, error) {
	stmt := q.builder.Insert(tableMovies).Prepared(true).
		Rows(goqu.Record{
			"id":                      m.ID,
			"title":                   m.Title,
			"genre_id":                m.GenreID,
			"genre":                   m.Genre,
			"number_in_stock":         m.NumberInStock,
			"daily_rental_rate_cents": m.DailyRentalRateCents,
			"created_at":              m.CreatedAt,
			"updated_at":              m.UpdatedAt,
		}).
		Returning(movieColumns...)
	return queryOne[Movie](ctx, db, stmt)
}

func (q *Queries) UpdateMovie(ctx context.Context, db DBTX, m Movie) (Movie, error) {
	stmt := q.builder.Update(tableMovies).Prepared(true).
		Set(goqu.Record{
			"title":                   m.Title,
			"genre_id":                m.GenreID,
			"genre":                   m.Genre,
			"number_in_stock":         m.NumberInStock,
			"daily_rental_rate_cents": m.DailyRentalRateCents,
			"updated_at":              m.UpdatedAt,
		}).
		Where(goqu.C("id").Eq(m.ID)).
		Returning(movieColumns...)
	return queryOne[Movie](ctx, db, stmt)
}

func (q *Queries) DeleteMovie(ctx context.Context, db DBTX, id uuid.UUID) (Movie, error) {
	stmt := q.builder.Delete(tableMovies).Prepared(true).
		Where(goqu.C("id").Eq(id)).
		Returning(movieColumns...)
	return queryOne[Movie](ctx, db, stmt)
}

// IncrementMovieStock returns the number of rows touched; 0 means the movie is gone.
func (q *Queries) IncrementMovieStock(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	stmt := q.builder.Update(tableMovies).Prepared(true).
		Set(goqu.Record{"number_in_stock": goqu.L("number_in_stock + 1")}).
		Where(goqu.C("id").Eq(id))
	return exec(ctx, db, stmt)
}

// DecrementMovieStock never drives the stock below zero; 0 rows means nothing was left.
func (q *Queries) DecrementMovieStock(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	stmt := q.builder.Update(tableMovies).Prepared(true).
		Set(goqu.Record{"number_in_stock": goqu.L("number_in_stock - 1")}).
		Where(
			goqu.C("id").Eq(id),
			goqu.C("number_in_stock").Gt(0),
		)
	return exec(ctx, db, stmt)
}
