package converter

import (
	"vidly/internal/domain/money"
	"vidly/internal/domain/rental"
	"vidly/internal/infra/document"
	"vidly/internal/infra/pgsql"
)

func RentalToRow(r *rental.Rental) (pgsql.Rental, error) {
	customerDoc, err := document.EncodeCustomer(r.Customer())
	if err != nil {
		return pgsql.Rental{}, err
	}
	movieDoc, err := document.EncodeMovie(r.Movie())
	if err != nil {
		return pgsql.Rental{}, err
	}

	row := pgsql.Rental{
		ID:           r.ID(),
		CustomerID:   r.Customer().ID,
		MovieID:      r.Movie().ID,
		Customer:     customerDoc,
		Movie:        movieDoc,
		DateOut:      r.DateOut(),
		DateReturned: r.DateReturned(),
	}
	if fee := r.RentalFee(); fee != nil {
		cents := fee.Cents()
		row.RentalFeeCents = &cents
	}
	return row, nil
}

func RentalFromRow(row pgsql.Rental) (*rental.Rental, error) {
	c, err := document.DecodeCustomer(row.Customer)
	if err != nil {
		return nil, err
	}
	m, err := document.DecodeMovie(row.Movie)
	if err != nil {
		return nil, err
	}

	var fee *money.Money
	if row.RentalFeeCents != nil {
		f, ferr := money.NewMoney(*row.RentalFeeCents)
		if ferr != nil {
			return nil, ferr
		}
		fee = &f
	}
	return rental.ReconstructRental(row.ID, c, m, row.DateOut, row.DateReturned, fee), nil
}
