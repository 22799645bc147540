package readstore

import (
	"context"

	"vidly/internal/infra"
	"vidly/internal/infra/pgsql"
	"vidly/internal/pkg/pgconv"
	"vidly/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	ListCustomers(ctx context.Context, db pgsql.DBTX) ([]pgsql.Customer, error)
	FindCustomerByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Customer, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      pgsql.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db pgsql.DBTX) *CustomerReadStore {
	return &CustomerReadStore{queries: queries, db: db}
}

func (r *CustomerReadStore) FindAll(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.queries.ListCustomers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}

	views := make([]*queries.CustomerView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCustomerView(row))
	}
	return views, nil
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.FindCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return toCustomerView(row), nil
}

func toCustomerView(row pgsql.Customer) *queries.CustomerView {
	return &queries.CustomerView{
		ID:     row.ID,
		Name:   row.Name,
		Phone:  row.Phone,
		IsGold: row.IsGold,
	}
}
