package commands

import (
	"context"

	"vidly/internal/domain/customer"
	reqdto "vidly/internal/handler/dto/request"
	"vidly/internal/pkg/clock"
	"vidly/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerCommands interface {
	Create(ctx context.Context, req reqdto.CustomerRequest) (*customer.Customer, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.CustomerRequest) (*customer.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type customerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCustomerCommands(uow shared.UnitOfWork, clk clock.Clock) CustomerCommands {
	return &customerCommandsImpl{uow: uow, clock: clk}
}

func (c *customerCommandsImpl) Create(ctx context.Context, req reqdto.CustomerRequest) (*customer.Customer, error) {
	cust, err := customer.NewCustomer(req.Name, req.Phone, req.IsGold, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Customers().Create(ctx, cust)
	})
	if err != nil {
		return nil, err
	}
	return cust, nil
}

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.CustomerRequest) (*customer.Customer, error) {
	var updated *customer.Customer
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Customers().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, shared.ErrCustomerNotFound)
		}
		if err := cust.Update(req.Name, req.Phone, req.IsGold, c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Customers().Update(ctx, cust); err != nil {
			return notFoundAs(err, shared.ErrCustomerNotFound)
		}
		updated = cust
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	var deleted *customer.Customer
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Customers().Delete(ctx, id)
		if err != nil {
			return notFoundAs(err, shared.ErrCustomerNotFound)
		}
		deleted = cust
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
