package repository

import (
	"context"

	"vidly/internal/domain/customer"
	"vidly/internal/infra"
	"vidly/internal/infra/pgsql"
	"vidly/internal/infra/repository/converter"
	"vidly/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	FindCustomerByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Customer, error)
	FindCustomerForShare(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Customer, error)
	InsertCustomer(ctx context.Context, db pgsql.DBTX, c pgsql.Customer) (pgsql.Customer, error)
	UpdateCustomer(ctx context.Context, db pgsql.DBTX, c pgsql.Customer) (pgsql.Customer, error)
	DeleteCustomer(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Customer, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      pgsql.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db pgsql.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	row, err := r.queries.FindCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (r *CustomerRepository) FindForShare(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	row, err := r.queries.FindCustomerForShare(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock customer", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if _, err := r.queries.InsertCustomer(ctx, r.db, converter.CustomerToRow(c)); err != nil {
		return infra.WrapRepoErr("failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if _, err := r.queries.UpdateCustomer(ctx, r.db, converter.CustomerToRow(c)); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update customer", err)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	row, err := r.queries.DeleteCustomer(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete customer", err)
	}
	return converter.CustomerFromRow(row), nil
}
