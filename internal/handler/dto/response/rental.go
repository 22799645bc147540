package response

import (
	"time"

	"vidly/internal/domain/rental"
	"vidly/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentedMovieResponse struct {
	ID              uuid.UUID `json:"_id"`
	Title           string    `json:"title"`
	DailyRentalRate float64   `json:"dailyRentalRate"`
}

type RentalResponse struct {
	ID           uuid.UUID           `json:"_id"`
	Customer     CustomerResponse    `json:"customer"`
	Movie        RentedMovieResponse `json:"movie"`
	DateOut      time.Time           `json:"dateOut"`
	DateReturned *time.Time          `json:"dateReturned,omitempty"`
	RentalFee    *float64            `json:"rentalFee,omitempty"`
}

func FromRental(r *rental.Rental) *RentalResponse {
	c, m := r.Customer(), r.Movie()
	resp := &RentalResponse{
		ID:           r.ID(),
		Customer:     CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, IsGold: c.IsGold},
		Movie:        RentedMovieResponse{ID: m.ID, Title: m.Title, DailyRentalRate: m.DailyRentalRate.Decimal()},
		DateOut:      r.DateOut(),
		DateReturned: r.DateReturned(),
	}
	if fee := r.RentalFee(); fee != nil {
		amount := fee.Decimal()
		resp.RentalFee = &amount
	}
	return resp
}

func FromRentalView(v *queries.RentalView) *RentalResponse {
	return copyInto(&RentalResponse{}, v)
}

func FromRentalViews(vs []*queries.RentalView) []*RentalResponse {
	out := make([]*RentalResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromRentalView(v))
	}
	return out
}
