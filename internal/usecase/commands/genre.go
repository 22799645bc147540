package commands

import (
	"context"

	"vidly/internal/domain/genre"
	reqdto "vidly/internal/handler/dto/request"
	"vidly/internal/infra"
	"vidly/internal/pkg/clock"
	"vidly/internal/usecase/shared"

	"github.com/google/uuid"
)

type GenreCommands interface {
	Create(ctx context.Context, req reqdto.GenreRequest) (*genre.Genre, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.GenreRequest) (*genre.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) (*genre.Genre, error)
}

type genreCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewGenreCommands(uow shared.UnitOfWork, clk clock.Clock) GenreCommands {
	return &genreCommandsImpl{uow: uow, clock: clk}
}

func (c *genreCommandsImpl) Create(ctx context.Context, req reqdto.GenreRequest) (*genre.Genre, error) {
	g, err := genre.NewGenre(req.Name, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Genres().Create(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (c *genreCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.GenreRequest) (*genre.Genre, error) {
	var updated *genre.Genre
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := tx.Genres().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, shared.ErrGenreNotFound)
		}
		if err := g.Rename(req.Name, c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Genres().Update(ctx, g); err != nil {
			return notFoundAs(err, shared.ErrGenreNotFound)
		}
		updated = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *genreCommandsImpl) Delete(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	var deleted *genre.Genre
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := tx.Genres().Delete(ctx, id)
		if err != nil {
			return notFoundAs(err, shared.ErrGenreNotFound)
		}
		deleted = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// notFoundAs swaps a repository NOT_FOUND for the caller-facing sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
