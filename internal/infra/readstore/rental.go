package readstore

import (
	"context"

	"vidly/internal/domain/money"
	"vidly/internal/infra"
	"vidly/internal/infra/document"
	"vidly/internal/infra/pgsql"
	"vidly/internal/pkg/pgconv"
	"vidly/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalReadQueries interface {
	ListRentals(ctx context.Context, db pgsql.DBTX) ([]pgsql.Rental, error)
	FindRentalByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Rental, error)
}

type RentalReadStore struct {
	queries RentalReadQueries
	db      pgsql.DBTX
}

func NewRentalReadStore(queries RentalReadQueries, db pgsql.DBTX) *RentalReadStore {
	return &RentalReadStore{queries: queries, db: db}
}

func (r *RentalReadStore) FindAll(ctx context.Context) ([]*queries.RentalView, error) {
	rows, err := r.queries.ListRentals(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals", err)
	}

	views := make([]*queries.RentalView, 0, len(rows))
	for _, row := range rows {
		view, err := toRentalView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row, err := r.queries.FindRentalByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental", err)
	}
	return toRentalView(row)
}

func toRentalView(row pgsql.Rental) (*queries.RentalView, error) {
	c, err := document.DecodeCustomer(row.Customer)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode rental customer", err)
	}
	m, err := document.DecodeMovie(row.Movie)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode rental movie", err)
	}

	view := &queries.RentalView{
		ID: row.ID,
		Customer: queries.CustomerView{
			ID:     c.ID,
			Name:   c.Name,
			Phone:  c.Phone,
			IsGold: c.IsGold,
		},
		Movie: queries.RentedMovieView{
			ID:              m.ID,
			Title:           m.Title,
			DailyRentalRate: m.DailyRentalRate.Decimal(),
		},
		DateOut:      row.DateOut,
		DateReturned: row.DateReturned,
	}
	if row.RentalFeeCents != nil {
		fee, err := money.NewMoney(*row.RentalFeeCents)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid rental fee", err)
		}
		amount := fee.Decimal()
		view.RentalFee = &amount
	}
	return view, nil
}
