package movie

import (
	"strings"
	"time"
	"unicode/utf8"

	"vidly/internal/domain/genre"
	"vidly/internal/domain/money"
	"vidly/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MinTitleLength = 5
	MaxTitleLength = 255
	MaxStock       = 255
	MaxRateCents   = 25500
)

var (
	ErrInvalidTitle = errs.NewMarked("movie title must be between 5 and 255 characters", errs.ErrInvalidInput)
	ErrInvalidStock = errs.NewMarked("number in stock must be between 0 and 255", errs.ErrInvalidInput)
	ErrInvalidRate  = errs.NewMarked("daily rental rate must be greater than 0 and at most 255", errs.ErrInvalidInput)
	ErrOutOfStock   = errs.NewMarked("Movie not in stock.", errs.ErrInvalidInput)
)

type Movie struct {
	id              uuid.UUID
	title           string
	genre           genre.Snapshot
	numberInStock   int
	dailyRentalRate money.Money
	createdAt       time.Time
	updatedAt       time.Time
}

func NewMovie(title string, g genre.Snapshot, numberInStock int, dailyRentalRate money.Money, now time.Time) (*Movie, error) {
	m := &Movie{id: uuid.New(), createdAt: now}
	if err := m.Update(title, g, numberInStock, dailyRentalRate, now); err != nil {
		return nil, err
	}
	return m, nil
}

func ReconstructMovie(id uuid.UUID, title string, g genre.Snapshot, numberInStock int, dailyRentalRate money.Money, createdAt, updatedAt time.Time) *Movie {
	return &Movie{
		id:              id,
		title:           title,
		genre:           g,
		numberInStock:   numberInStock,
		dailyRentalRate: dailyRentalRate,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (m *Movie) Update(title string, g genre.Snapshot, numberInStock int, dailyRentalRate money.Money, now time.Time) error {
	title = strings.TrimSpace(title)
	if n := utf8.RuneCountInString(title); n < MinTitleLength || n > MaxTitleLength {
		return ErrInvalidTitle
	}
	if numberInStock < 0 || numberInStock > MaxStock {
		return ErrInvalidStock
	}
	if dailyRentalRate.IsZero() || dailyRentalRate.Cents() > MaxRateCents {
		return ErrInvalidRate
	}
	m.title = title
	m.genre = g
	m.numberInStock = numberInStock
	m.dailyRentalRate = dailyRentalRate
	m.updatedAt = now
	return nil
}

// EnsureRentable reports whether a copy can be handed out.
func (m *Movie) EnsureRentable() error {
	if m.numberInStock <= 0 {
		return ErrOutOfStock
	}
	return nil
}

// Snapshot is the copy embedded into rental documents; the rate is frozen at checkout.
func (m *Movie) Snapshot() Snapshot {
	return Snapshot{ID: m.id, Title: m.title, DailyRentalRate: m.dailyRentalRate}
}

func (m *Movie) ID() uuid.UUID                { return m.id }
func (m *Movie) Title() string                { return m.title }
func (m *Movie) Genre() genre.Snapshot        { return m.genre }
func (m *Movie) NumberInStock() int           { return m.numberInStock }
func (m *Movie) DailyRentalRate() money.Money { return m.dailyRentalRate }
func (m *Movie) CreatedAt() time.Time         { return m.createdAt }
func (m *Movie) UpdatedAt() time.Time         { return m.updatedAt }

type Snapshot struct {
	ID              uuid.UUID
	Title           string
	DailyRentalRate money.Money
}
