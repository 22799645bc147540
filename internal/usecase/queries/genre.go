package queries

import (
	"context"

	"vidly/internal/infra"
	"vidly/internal/usecase/shared"

	"github.com/google/uuid"
)

type GenreReadStore interface {
	FindAll(ctx context.Context) ([]*GenreView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GenreView, error)
}

type GenreQueries interface {
	List(ctx context.Context) ([]*GenreView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GenreView, error)
}

type genreQueriesImpl struct {
	readStore GenreReadStore
}

func NewGenreQueries(readStore GenreReadStore) GenreQueries {
	return &genreQueriesImpl{readStore: readStore}
}

func (q *genreQueriesImpl) List(ctx context.Context) ([]*GenreView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *genreQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GenreView, error) {
	g, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrGenreNotFound
		}
		return nil, err
	}
	return g, nil
}
