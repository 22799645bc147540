package commands

import (
	"context"

	"vidly/internal/domain/genre"
	"vidly/internal/domain/money"
	"vidly/internal/domain/movie"
	reqdto "vidly/internal/handler/dto/request"
	"vidly/internal/pkg/clock"
	"vidly/internal/usecase/shared"

	"github.com/google/uuid"
)

type MovieCommands interface {
	Create(ctx context.Context, req reqdto.MovieRequest) (*movie.Movie, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.MovieRequest) (*movie.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) (*movie.Movie, error)
}

type movieCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMovieCommands(uow shared.UnitOfWork, clk clock.Clock) MovieCommands {
	return &movieCommandsImpl{uow: uow, clock: clk}
}

type movieInput struct {
	genreID uuid.UUID
	stock   int
	rate    money.Money
}

func parseMovieRequest(req reqdto.MovieRequest) (movieInput, error) {
	genreID, err := uuid.Parse(req.GenreID)
	if err != nil {
		return movieInput{}, shared.ErrInvalidGenre
	}
	if req.NumberInStock == nil {
		return movieInput{}, movie.ErrInvalidStock
	}
	if req.DailyRentalRate == nil {
		return movieInput{}, movie.ErrInvalidRate
	}
	rate, err := money.FromDecimal(*req.DailyRentalRate)
	if err != nil {
		return movieInput{}, movie.ErrInvalidRate
	}
	return movieInput{genreID: genreID, stock: *req.NumberInStock, rate: rate}, nil
}

func (c *movieCommandsImpl) Create(ctx context.Context, req reqdto.MovieRequest) (*movie.Movie, error) {
	in, err := parseMovieRequest(req)
	if err != nil {
		return nil, err
	}

	var created *movie.Movie
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := c.lookupGenre(ctx, tx, in.genreID)
		if err != nil {
			return err
		}
		m, err := movie.NewMovie(req.Title, g, in.stock, in.rate, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Movies().Create(ctx, m); err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *movieCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.MovieRequest) (*movie.Movie, error) {
	in, err := parseMovieRequest(req)
	if err != nil {
		return nil, err
	}

	var updated *movie.Movie
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := c.lookupGenre(ctx, tx, in.genreID)
		if err != nil {
			return err
		}
		m, err := tx.Movies().FindForUpdate(ctx, id)
		if err != nil {
			return notFoundAs(err, shared.ErrMovieNotFound)
		}
		if err := m.Update(req.Title, g, in.stock, in.rate, c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Movies().Update(ctx, m); err != nil {
			return notFoundAs(err, shared.ErrMovieNotFound)
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *movieCommandsImpl) Delete(ctx context.Context, id uuid.UUID) (*movie.Movie, error) {
	var deleted *movie.Movie
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Movies().Delete(ctx, id)
		if err != nil {
			return notFoundAs(err, shared.ErrMovieNotFound)
		}
		deleted = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (c *movieCommandsImpl) lookupGenre(ctx context.Context, tx shared.Tx, id uuid.UUID) (genre.Snapshot, error) {
	g, err := tx.Genres().FindByID(ctx, id)
	if err != nil {
		return genre.Snapshot{}, notFoundAs(err, shared.ErrInvalidGenre)
	}
	return g.Snapshot(), nil
}
