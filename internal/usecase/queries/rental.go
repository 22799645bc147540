package queries

import (
	"context"

	"vidly/internal/infra"
	"vidly/internal/usecase/shared"

	"github.com/google/uuid"
)

type RentalReadStore interface {
	FindAll(ctx context.Context) ([]*RentalView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
}

type RentalQueries interface {
	// List returns the newest rentals first.
	List(ctx context.Context) ([]*RentalView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
}

type rentalQueriesImpl struct {
	readStore RentalReadStore
}

func NewRentalQueries(readStore RentalReadStore) RentalQueries {
	return &rentalQueriesImpl{readStore: readStore}
}

func (q *rentalQueriesImpl) List(ctx context.Context) ([]*RentalView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	r, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrRentalNotFound
		}
		return nil, err
	}
	return r, nil
}
