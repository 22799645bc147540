package queries

import (
	"context"

	"vidly/internal/infra"
	"vidly/internal/usecase/shared"

	"github.com/google/uuid"
)

type MovieReadStore interface {
	FindAll(ctx context.Context) ([]*MovieView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MovieView, error)
}

type MovieQueries interface {
	List(ctx context.Context) ([]*MovieView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MovieView, error)
}

type movieQueriesImpl struct {
	readStore MovieReadStore
}

func NewMovieQueries(readStore MovieReadStore) MovieQueries {
	return &movieQueriesImpl{readStore: readStore}
}

func (q *movieQueriesImpl) List(ctx context.Context) ([]*MovieView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *movieQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MovieView, error) {
	m, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}
