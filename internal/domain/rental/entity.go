package rental

import (
	"time"

	"vidly/internal/domain/customer"
	"vidly/internal/domain/money"
	"vidly/internal/domain/movie"
	"vidly/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAlreadyReturned = errs.NewMarked("rental already has been processed", errs.ErrAlreadyProcessed)

// Rental is Open while dateReturned is nil and Closed afterwards.
// Closing happens once; dateReturned and rentalFee are set together.
type Rental struct {
	id           uuid.UUID
	customer     customer.Snapshot
	movie        movie.Snapshot
	dateOut      time.Time
	dateReturned *time.Time
	rentalFee    *money.Money
}

func NewRental(c customer.Snapshot, m movie.Snapshot, now time.Time) *Rental {
	return &Rental{
		id:       uuid.New(),
		customer: c,
		movie:    m,
		dateOut:  now,
	}
}

func ReconstructRental(id uuid.UUID, c customer.Snapshot, m movie.Snapshot, dateOut time.Time, dateReturned *time.Time, rentalFee *money.Money) *Rental {
	return &Rental{
		id:           id,
		customer:     c,
		movie:        m,
		dateOut:      dateOut,
		dateReturned: dateReturned,
		rentalFee:    rentalFee,
	}
}

// Return closes the rental at now and charges the embedded daily rate.
func (r *Rental) Return(now time.Time, calc FeeCalculator) error {
	if !r.IsOpen() {
		return ErrAlreadyReturned
	}
	fee := calc.CalculateFee(r.dateOut, now, r.movie.DailyRentalRate)
	returned := now
	r.dateReturned = &returned
	r.rentalFee = &fee
	return nil
}

func (r *Rental) IsOpen() bool { return r.dateReturned == nil }

func (r *Rental) ID() uuid.UUID               { return r.id }
func (r *Rental) Customer() customer.Snapshot { return r.customer }
func (r *Rental) Movie() movie.Snapshot       { return r.movie }
func (r *Rental) DateOut() time.Time          { return r.dateOut }
func (r *Rental) DateReturned() *time.Time    { return r.dateReturned }
func (r *Rental) RentalFee() *money.Money     { return r.rentalFee }
