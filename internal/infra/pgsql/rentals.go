package pgsql

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const tableRentals = "rentals"

var rentalColumns = []any{
	"id", "customer_id", "movie_id", "customer", "movie", "date_out", "date_returned", "rental_fee_cents",
}

func (q *Queries) ListRentals(ctx context.Context, db DBTX) ([]Rental, error) {
	stmt := q.builder.From(tableRentals).Prepared(true).
		Select(rentalColumns...).
		Order(goqu.C("date_out").Desc(), goqu.C("id").Asc())
	return queryMany[Rental](ctx, db, stmt)
}

func (q *Queries) FindRentalByID(ctx context.Context, db DBTX, id uuid.UUID) (Rental, error) {
	stmt := q.builder.From(tableRentals).Prepared(true).
		Select(rentalColumns...).
		Where(goqu.C("id").Eq(id))
	return queryOne[Rental](ctx, db, stmt)
}

// LookupRentalForUpdate returns the open rental for the pair when there is one,
// otherwise the most recently closed one. The chosen row stays locked until the
// surrounding transaction ends.
func (q *Queries) LookupRentalForUpdate(ctx context.Context, db DBTX, customerID, movieID uuid.UUID) (Rental, error) {
	stmt := q.builder.From(tableRentals).Prepared(true).
		Select(rentalColumns...).
		Where(
			goqu.C("customer_id").Eq(customerID),
			goqu.C("movie_id").Eq(movieID),
		).
		Order(
			goqu.L("date_returned IS NULL").Desc(),
			goqu.C("date_out").Desc(),
		).
		Limit(1).
		ForUpdate(exp.Wait)
	return queryOne[Rental](ctx, db, stmt)
}

func (q *Queries) InsertRental(ctx context.Context, db DBTX, r Rental) (Rental, error) {
	stmt := q.builder.Insert(tableRentals).Prepared(true).
		Rows(goqu.Record{
			"id":          r.ID,
			"customer_id": r.CustomerID,
			"movie_id":    r.MovieID,
			"customer":    r.Customer,
			"movie":       r.Movie,
			"date_out":    r.DateOut,
		}).
		Returning(rentalColumns...)
	return queryOne[Rental](ctx, db, stmt)
}

// CloseRental only touches a rental that is still open; 0 rows means another
// request closed it first.
func (q *Queries) CloseRental(ctx context.Context, db DBTX, id uuid.UUID, dateReturned time.Time, feeCents int64) (int64, error) {
	stmt := q.builder.Update(tableRentals).Prepared(true).
		Set(goqu.Record{
			"date_returned":    dateReturned,
			"rental_fee_cents": feeCents,
		}).
		Where(
			goqu.C("id").Eq(id),
			goqu.C("date_returned").IsNull(),
		)
	return exec(ctx, db, stmt)
}
