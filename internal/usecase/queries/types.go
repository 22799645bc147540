package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type GenreView struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"name"`
}

type MovieView struct {
	ID              uuid.UUID `json:"_id"`
	Title           string    `json:"title"`
	Genre           GenreView `json:"genre"`
	NumberInStock   int       `json:"numberInStock"`
	DailyRentalRate float64   `json:"dailyRentalRate"`
}

type CustomerView struct {
	ID     uuid.UUID `json:"_id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	IsGold bool      `json:"isGold"`
}

// RentedMovieView is the movie as it was when the rental was issued.
type RentedMovieView struct {
	ID              uuid.UUID `json:"_id"`
	Title           string    `json:"title"`
	DailyRentalRate float64   `json:"dailyRentalRate"`
}

type RentalView struct {
	ID           uuid.UUID       `json:"_id"`
	Customer     CustomerView    `json:"customer"`
	Movie        RentedMovieView `json:"movie"`
	DateOut      time.Time       `json:"dateOut"`
	DateReturned *time.Time      `json:"dateReturned,omitempty"`
	RentalFee    *float64        `json:"rentalFee,omitempty"`
}

type UserView struct {
	ID      uuid.UUID `json:"_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin"`
}
