// Package document encodes the denormalized snapshots that movies and rentals
// embed as JSONB.
package document

import (
	"fmt"

	"vidly/internal/domain/customer"
	"vidly/internal/domain/genre"
	"vidly/internal/domain/money"
	"vidly/internal/domain/movie"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Genre struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"name"`
}

type Customer struct {
	ID     uuid.UUID `json:"_id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	IsGold bool      `json:"isGold"`
}

// Movie keeps the rate in cents so the frozen price never drifts through
// float rounding.
type Movie struct {
	ID                   uuid.UUID `json:"_id"`
	Title                string    `json:"title"`
	DailyRentalRateCents int64     `json:"dailyRentalRateCents"`
}

func EncodeGenre(s genre.Snapshot) ([]byte, error) {
	return marshal(Genre{ID: s.ID, Name: s.Name})
}

func DecodeGenre(data []byte) (genre.Snapshot, error) {
	var doc Genre
	if err := unmarshal(data, &doc); err != nil {
		return genre.Snapshot{}, err
	}
	return genre.Snapshot{ID: doc.ID, Name: doc.Name}, nil
}

func EncodeCustomer(s customer.Snapshot) ([]byte, error) {
	return marshal(Customer{ID: s.ID, Name: s.Name, Phone: s.Phone, IsGold: s.IsGold})
}

func DecodeCustomer(data []byte) (customer.Snapshot, error) {
	var doc Customer
	if err := unmarshal(data, &doc); err != nil {
		return customer.Snapshot{}, err
	}
	return customer.Snapshot{ID: doc.ID, Name: doc.Name, Phone: doc.Phone, IsGold: doc.IsGold}, nil
}

func EncodeMovie(s movie.Snapshot) ([]byte, error) {
	return marshal(Movie{ID: s.ID, Title: s.Title, DailyRentalRateCents: s.DailyRentalRate.Cents()})
}

func DecodeMovie(data []byte) (movie.Snapshot, error) {
	var doc Movie
	if err := unmarshal(data, &doc); err != nil {
		return movie.Snapshot{}, err
	}
	rate, err := money.NewMoney(doc.DailyRentalRateCents)
	if err != nil {
		return movie.Snapshot{}, fmt.Errorf("movie document %s: %w", doc.ID, err)
	}
	return movie.Snapshot{ID: doc.ID, Title: doc.Title, DailyRentalRate: rate}, nil
}

func marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

func unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	return nil
}
