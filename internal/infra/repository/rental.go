package repository

import (
	"context"
	"time"

	"vidly/internal/domain/rental"
	"vidly/internal/infra"
	"vidly/internal/infra/pgsql"
	"vidly/internal/infra/repository/converter"
	"vidly/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RentalWriteQueries interface {
	LookupRentalForUpdate(ctx context.Context, db pgsql.DBTX, customerID, movieID uuid.UUID) (pgsql.Rental, error)
	InsertRental(ctx context.Context, db pgsql.DBTX, r pgsql.Rental) (pgsql.Rental, error)
	CloseRental(ctx context.Context, db pgsql.DBTX, id uuid.UUID, dateReturned time.Time, feeCents int64) (int64, error)
}

type RentalRepository struct {
	queries RentalWriteQueries
	db      pgsql.DBTX
}

func NewRentalRepository(queries RentalWriteQueries, db pgsql.DBTX) *RentalRepository {
	return &RentalRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RentalRepository) LookupForUpdate(ctx context.Context, customerID, movieID uuid.UUID) (*rental.Rental, error) {
	row, err := r.queries.LookupRentalForUpdate(ctx, r.db, customerID, movieID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to look up rental", err)
	}

	rent, err := converter.RentalFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert rental row", err)
	}
	return rent, nil
}

func (r *RentalRepository) Create(ctx context.Context, rent *rental.Rental) error {
	row, err := converter.RentalToRow(rent)
	if err != nil {
		return infra.WrapRepoErr("failed to convert rental", err)
	}
	if _, err := r.queries.InsertRental(ctx, r.db, row); err != nil {
		return infra.WrapRepoErr("failed to create rental", err)
	}
	return nil
}

// Close reports false when the rental was closed by someone else in the meantime.
func (r *RentalRepository) Close(ctx context.Context, rent *rental.Rental) (bool, error) {
	returned, fee := rent.DateReturned(), rent.RentalFee()
	if returned == nil || fee == nil {
		return false, infra.WrapRepoErr("rental has not been returned", nil, infra.KindCheckViolated)
	}

	n, err := r.queries.CloseRental(ctx, r.db, rent.ID(), *returned, fee.Cents())
	if err != nil {
		return false, infra.WrapRepoErr("failed to close rental", err)
	}
	return n > 0, nil
}
