//go:build unit || e2e

package builder

import (
	"time"

	"vidly/internal/domain/customer"
	"vidly/internal/domain/genre"
	"vidly/internal/domain/money"
	"vidly/internal/domain/movie"
	"vidly/internal/infra/document"
	"vidly/internal/infra/pgsql"
	"vidly/internal/usecase/queries"

	"github.com/google/uuid"
)

type GenreBuilder struct {
	ID   uuid.UUID
	Name string
}

func NewGenreBuilder() *GenreBuilder {
	return &GenreBuilder{ID: uuid.New(), Name: "Thriller"}
}

func (g *GenreBuilder) WithName(name string) *GenreBuilder {
	g.Name = name
	return g
}

// BuildDomain bypasses validation so tests can stage any stored state.
func (g *GenreBuilder) BuildDomain() *genre.Genre {
	now := time.Now()
	return genre.ReconstructGenre(g.ID, g.Name, now, now)
}

func (g *GenreBuilder) BuildSnapshot() genre.Snapshot {
	return genre.Snapshot{ID: g.ID, Name: g.Name}
}

func (g *GenreBuilder) BuildInfra() pgsql.Genre {
	now := time.Now()
	return pgsql.Genre{ID: g.ID, Name: g.Name, CreatedAt: now, UpdatedAt: now}
}

func (g *GenreBuilder) BuildView() *queries.GenreView {
	return &queries.GenreView{ID: g.ID, Name: g.Name}
}

type MovieBuilder struct {
	ID                   uuid.UUID
	Title                string
	Genre                genre.Snapshot
	NumberInStock        int
	DailyRentalRateCents int64
}

func NewMovieBuilder() *MovieBuilder {
	return &MovieBuilder{
		ID:                   uuid.New(),
		Title:                "The Silence of the Lambs",
		Genre:                NewGenreBuilder().BuildSnapshot(),
		NumberInStock:        10,
		DailyRentalRateCents: 200,
	}
}

func (m *MovieBuilder) With(mutate func(*MovieBuilder)) *MovieBuilder {
	mutate(m)
	return m
}

func (m *MovieBuilder) WithStock(n int) *MovieBuilder {
	m.NumberInStock = n
	return m
}

func (m *MovieBuilder) WithRateCents(cents int64) *MovieBuilder {
	m.DailyRentalRateCents = cents
	return m
}

func (m *MovieBuilder) BuildDomain() *movie.Movie {
	now := time.Now()
	rate, _ := money.NewMoney(m.DailyRentalRateCents)
	return movie.ReconstructMovie(m.ID, m.Title, m.Genre, m.NumberInStock, rate, now, now)
}

func (m *MovieBuilder) BuildSnapshot() movie.Snapshot {
	return m.BuildDomain().Snapshot()
}

func (m *MovieBuilder) BuildInfra() pgsql.Movie {
	now := time.Now()
	genreDoc, err := document.EncodeGenre(m.Genre)
	if err != nil {
		panic(err)
	}
	return pgsql.Movie{
		ID:                   m.ID,
		Title:                m.Title,
		GenreID:              m.Genre.ID,
		Genre:                genreDoc,
		NumberInStock:        int32(m.NumberInStock),
		DailyRentalRateCents: int32(m.DailyRentalRateCents),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func (m *MovieBuilder) BuildView() *queries.MovieView {
	return &queries.MovieView{
		ID:              m.ID,
		Title:           m.Title,
		Genre:           queries.GenreView{ID: m.Genre.ID, Name: m.Genre.Name},
		NumberInStock:   m.NumberInStock,
		DailyRentalRate: float64(m.DailyRentalRateCents) / 100,
	}
}

type CustomerBuilder struct {
	ID     uuid.UUID
	Name   string
	Phone  string
	IsGold bool
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:    uuid.New(),
		Name:  "Clarice Starling",
		Phone: "12345",
	}
}

func (c *CustomerBuilder) AsGold() *CustomerBuilder {
	c.IsGold = true
	return c
}

func (c *CustomerBuilder) BuildDomain() *customer.Customer {
	now := time.Now()
	return customer.ReconstructCustomer(c.ID, c.Name, c.Phone, c.IsGold, now, now)
}

func (c *CustomerBuilder) BuildSnapshot() customer.Snapshot {
	return customer.Snapshot{ID: c.ID, Name: c.Name, Phone: c.Phone, IsGold: c.IsGold}
}

func (c *CustomerBuilder) BuildInfra() pgsql.Customer {
	now := time.Now()
	return pgsql.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		IsGold:    c.IsGold,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{ID: c.ID, Name: c.Name, Phone: c.Phone, IsGold: c.IsGold}
}
