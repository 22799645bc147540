package commands

import (
	"context"
	"log/slog"

	"vidly/internal/domain/rental"
	reqdto "vidly/internal/handler/dto/request"
	"vidly/internal/pkg/clock"
	"vidly/internal/pkg/errs"
	"vidly/internal/usecase/shared"
)

var (
	ErrNoRentalForPair        = errs.NewMarked("Rental not found.", errs.ErrNotFound)
	ErrReturnAlreadyProcessed = errs.NewMarked("Return already processed.", errs.ErrAlreadyProcessed)
)

type ReturnCommands interface {
	Return(ctx context.Context, req reqdto.RentalRequest) (*rental.Rental, error)
}

type returnCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	fees   rental.FeeCalculator
	logger *slog.Logger
}

func NewReturnCommands(uow shared.UnitOfWork, clk clock.Clock, fees rental.FeeCalculator, logger *slog.Logger) ReturnCommands {
	return &returnCommandsImpl{
		uow:    uow,
		clock:  clk,
		fees:   fees,
		logger: logger,
	}
}

// Return closes the open rental of the pair, charges it and puts the copy
// back in stock. Close and restock commit together or not at all.
func (c *returnCommandsImpl) Return(ctx context.Context, req reqdto.RentalRequest) (*rental.Rental, error) {
	customerID, movieID, err := parseRentalPair(req)
	if err != nil {
		return nil, err
	}

	var returned *rental.Rental
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rent, err := tx.Rentals().LookupForUpdate(ctx, customerID, movieID)
		if err != nil {
			return notFoundAs(err, ErrNoRentalForPair)
		}

		if err := rent.Return(storedNow(c.clock), c.fees); err != nil {
			if errs.Is(err, rental.ErrAlreadyReturned) {
				return ErrReturnAlreadyProcessed
			}
			return err
		}

		closed, err := tx.Rentals().Close(ctx, rent)
		if err != nil {
			return err
		}
		if !closed {
			return ErrReturnAlreadyProcessed
		}

		restocked, err := tx.Movies().IncrementStock(ctx, rent.Movie().ID)
		if err != nil {
			return err
		}
		if !restocked {
			c.logger.Warn("returned movie no longer exists, stock not restored",
				"rental_id", rent.ID(),
				"movie_id", rent.Movie().ID,
			)
		}

		returned = rent
		return nil
	})
	if err != nil {
		return nil, err
	}
	return returned, nil
}
