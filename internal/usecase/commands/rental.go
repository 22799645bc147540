package commands

import (
	"context"
	"time"

	"vidly/internal/domain/movie"
	"vidly/internal/domain/rental"
	reqdto "vidly/internal/handler/dto/request"
	"vidly/internal/infra"
	"vidly/internal/pkg/clock"
	"vidly/internal/pkg/errs"
	"vidly/internal/usecase/shared"

	"github.com/google/uuid"
)

const openRentalConstraint = "uq_rentals_open_pair"

var ErrRentalAlreadyOpen = errs.NewMarked("Rental already open for this customer and movie.", errs.ErrInvalidInput)

type RentalCommands interface {
	Create(ctx context.Context, req reqdto.RentalRequest) (*rental.Rental, error)
}

type rentalCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRentalCommands(uow shared.UnitOfWork, clk clock.Clock) RentalCommands {
	return &rentalCommandsImpl{uow: uow, clock: clk}
}

// Create issues a rental and takes one copy out of stock. The movie row stays
// locked until commit so two issuances cannot both take the last copy.
func (c *rentalCommandsImpl) Create(ctx context.Context, req reqdto.RentalRequest) (*rental.Rental, error) {
	customerID, movieID, err := parseRentalPair(req)
	if err != nil {
		return nil, err
	}

	var created *rental.Rental
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Customers().FindForShare(ctx, customerID)
		if err != nil {
			return notFoundAs(err, shared.ErrInvalidCustomer)
		}
		m, err := tx.Movies().FindForUpdate(ctx, movieID)
		if err != nil {
			return notFoundAs(err, shared.ErrInvalidMovie)
		}
		if err := m.EnsureRentable(); err != nil {
			return err
		}

		rent := rental.NewRental(cust.Snapshot(), m.Snapshot(), storedNow(c.clock))
		if err := tx.Rentals().Create(ctx, rent); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) && infra.Constraint(err) == openRentalConstraint {
				return ErrRentalAlreadyOpen
			}
			return err
		}

		taken, err := tx.Movies().DecrementStock(ctx, movieID)
		if err != nil {
			return err
		}
		if !taken {
			return movie.ErrOutOfStock
		}
		created = rent
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// PostgreSQL keeps timestamps to the microsecond.
func storedNow(clk clock.Clock) time.Time {
	return clk.Now().Truncate(time.Microsecond)
}

func parseRentalPair(req reqdto.RentalRequest) (uuid.UUID, uuid.UUID, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, shared.ErrInvalidCustomer
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return uuid.Nil, uuid.Nil, shared.ErrInvalidMovie
	}
	return customerID, movieID, nil
}
