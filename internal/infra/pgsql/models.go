package pgsql

import (
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Movie.Genre holds the embedded genre document as raw JSONB.
type Movie struct {
	ID                   uuid.UUID `db:"id"`
	Title                string    `db:"title"`
	GenreID              uuid.UUID `db:"genre_id"`
	Genre                []byte    `db:"genre"`
	NumberInStock        int32     `db:"number_in_stock"`
	DailyRentalRateCents int32     `db:"daily_rental_rate_cents"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type Customer struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	IsGold    bool      `db:"is_gold"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Rental struct {
	ID             uuid.UUID  `db:"id"`
	CustomerID     uuid.UUID  `db:"customer_id"`
	MovieID        uuid.UUID  `db:"movie_id"`
	Customer       []byte     `db:"customer"`
	Movie          []byte     `db:"movie"`
	DateOut        time.Time  `db:"date_out"`
	DateReturned   *time.Time `db:"date_returned"`
	RentalFeeCents *int64     `db:"rental_fee_cents"`
}

type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
