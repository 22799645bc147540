package queries

import (
	"context"

	"vidly/internal/infra"
	"vidly/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerReadStore interface {
	FindAll(ctx context.Context) ([]*CustomerView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type CustomerQueries interface {
	List(ctx context.Context) ([]*CustomerView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	c, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}
