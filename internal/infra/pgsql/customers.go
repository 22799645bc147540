package pgsql

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const tableCustomers = "customers"

var customerColumns = []any{"id", "name", "phone", "is_gold", "created_at", "updated_at"}

func (q *Queries) ListCustomers(ctx context.Context, db DBTX) ([]Customer, error) {
	stmt := q.builder.From(tableCustomers).Prepared(true).
		Select(customerColumns...).
		Order(goqu.C("name").Asc(), goqu.C("id").Asc())
	return queryMany[Customer](ctx, db, stmt)
}

func (q *Queries) FindCustomerByID(ctx context.Context, db DBTX, id uuid.UUID) (Customer, error) {
	stmt := q.builder.From(tableCustomers).Prepared(true).
		Select(customerColumns...).
		Where(goqu.C("id").Eq(id))
	return queryOne[Customer](ctx, db, stmt)
}

// FindCustomerForShare blocks concurrent deletes while a rental snapshot is taken.
func (q *Queries) FindCustomerForShare(ctx context.Context, db DBTX, id uuid.UUID) (Customer, error) {
	stmt := q.builder.From(tableCustomers).Prepared(true).
		Select(customerColumns...).
		Where(goqu.C("id").Eq(id)).
		ForShare(exp.Wait)
	return queryOne[Customer](ctx, db, stmt)
}

func (q *Queries) InsertCustomer(ctx context.Context, db DBTX, c Customer) (Customer, error) {
	stmt := q.builder.Insert(tableCustomers).Prepared(true).
		Rows(goqu.Record{
			"id":         c.ID,
			"name":       c.Name,
			"phone":      c.Phone,
			"is_gold":    c.IsGold,
			"created_at": c.CreatedAt,
			"updated_at": c.UpdatedAt,
		}).
		Returning(customerColumns...)
	return queryOne[Customer](ctx, db, stmt)
}

func (q *Queries) UpdateCustomer(ctx context.Context, db DBTX, c Customer) (Customer, error) {
	stmt := q.builder.Update(tableCustomers).Prepared(true).
		Set(goqu.Record{
			"name":       c.Name,
			"phone":      c.Phone,
			"is_gold":    c.IsGold,
			"updated_at": c.UpdatedAt,
		}).
		Where(goqu.C("id").Eq(c.ID)).
		Returning(customerColumns...)
	return queryOne[Customer](ctx, db, stmt)
}

func (q *Queries) DeleteCustomer(ctx context.Context, db DBTX, id uuid.UUID) (Customer, error) {
	stmt := q.builder.Delete(tableCustomers).Prepared(true).
		Where(goqu.C("id").Eq(id)).
		Returning(customerColumns...)
	return queryOne[Customer](ctx, db, stmt)
}
