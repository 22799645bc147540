//go:build unit || e2e

package builder

import (
	"time"

	"vidly/internal/domain/customer"
	"vidly/internal/domain/money"
	"vidly/internal/domain/movie"
	"vidly/internal/domain/rental"
	"vidly/internal/infra/document"
	"vidly/internal/infra/pgsql"
	"vidly/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	ID             uuid.UUID
	Customer       customer.Snapshot
	Movie          movie.Snapshot
	DateOut        time.Time
	DateReturned   *time.Time
	RentalFeeCents *int64
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ID:       uuid.New(),
		Customer: NewCustomerBuilder().BuildSnapshot(),
		Movie:    NewMovieBuilder().BuildSnapshot(),
		DateOut:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (r *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(r)
	return r
}

func (r *RentalBuilder) WithDateOut(t time.Time) *RentalBuilder {
	r.DateOut = t
	return r
}

// Returned marks the rental closed at the given time with the given fee.
func (r *RentalBuilder) Returned(at time.Time, feeCents int64) *RentalBuilder {
	r.DateReturned = &at
	r.RentalFeeCents = &feeCents
	return r
}

func (r *RentalBuilder) BuildDomain() *rental.Rental {
	var fee *money.Money
	if r.RentalFeeCents != nil {
		f, _ := money.NewMoney(*r.RentalFeeCents)
		fee = &f
	}
	return rental.ReconstructRental(r.ID, r.Customer, r.Movie, r.DateOut, r.DateReturned, fee)
}

func (r *RentalBuilder) BuildInfra() pgsql.Rental {
	customerDoc, err := document.EncodeCustomer(r.Customer)
	if err != nil {
		panic(err)
	}
	movieDoc, err := document.EncodeMovie(r.Movie)
	if err != nil {
		panic(err)
	}
	return pgsql.Rental{
		ID:             r.ID,
		CustomerID:     r.Customer.ID,
		MovieID:        r.Movie.ID,
		Customer:       customerDoc,
		Movie:          movieDoc,
		DateOut:        r.DateOut,
		DateReturned:   r.DateReturned,
		RentalFeeCents: r.RentalFeeCents,
	}
}

func (r *RentalBuilder) BuildView() *queries.RentalView {
	view := &queries.RentalView{
		ID: r.ID,
		Customer: queries.CustomerView{
			ID:     r.Customer.ID,
			Name:   r.Customer.Name,
			Phone:  r.Customer.Phone,
			IsGold: r.Customer.IsGold,
		},
		Movie: queries.RentedMovieView{
			ID:              r.Movie.ID,
			Title:           r.Movie.Title,
			DailyRentalRate: r.Movie.DailyRentalRate.Decimal(),
		},
		DateOut:      r.DateOut,
		DateReturned: r.DateReturned,
	}
	if r.RentalFeeCents != nil {
		fee := float64(*r.RentalFeeCents) / 100
		view.RentalFee = &fee
	}
	return view
}
