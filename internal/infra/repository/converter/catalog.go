package converter

import (
	"fmt"

	"vidly/internal/domain/customer"
	"vidly/internal/domain/genre"
	"vidly/internal/domain/money"
	"vidly/internal/domain/movie"
	"vidly/internal/infra/document"
	"vidly/internal/infra/pgsql"
	"vidly/internal/pkg/pgconv"
)

func GenreToRow(g *genre.Genre) pgsql.Genre {
	return pgsql.Genre{
		ID:        g.ID(),
		Name:      g.Name().String(),
		CreatedAt: g.CreatedAt(),
		UpdatedAt: g.UpdatedAt(),
	}
}

func GenreFromRow(row pgsql.Genre) *genre.Genre {
	return genre.ReconstructGenre(row.ID, row.Name, row.CreatedAt, row.UpdatedAt)
}

func CustomerToRow(c *customer.Customer) pgsql.Customer {
	return pgsql.Customer{
		ID:        c.ID(),
		Name:      c.Name(),
		Phone:     c.Phone(),
		IsGold:    c.IsGold(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func CustomerFromRow(row pgsql.Customer) *customer.Customer {
	return customer.ReconstructCustomer(row.ID, row.Name, row.Phone, row.IsGold, row.CreatedAt, row.UpdatedAt)
}

func MovieToRow(m *movie.Movie) (pgsql.Movie, error) {
	genreDoc, err := document.EncodeGenre(m.Genre())
	if err != nil {
		return pgsql.Movie{}, err
	}
	return pgsql.Movie{
		ID:                   m.ID(),
		Title:                m.Title(),
		GenreID:              m.Genre().ID,
		Genre:                genreDoc,
		NumberInStock:        pgconv.IntToInt32(m.NumberInStock()),
		DailyRentalRateCents: pgconv.Int64ToInt32(m.DailyRentalRate().Cents()),
		CreatedAt:            m.CreatedAt(),
		UpdatedAt:            m.UpdatedAt(),
	}, nil
}

func MovieFromRow(row pgsql.Movie) (*movie.Movie, error) {
	g, err := document.DecodeGenre(row.Genre)
	if err != nil {
		return nil, err
	}
	rate, err := money.NewMoney(int64(row.DailyRentalRateCents))
	if err != nil {
		return nil, fmt.Errorf("movie %s rate: %w", row.ID, err)
	}
	return movie.ReconstructMovie(row.ID, row.Title, g, int(row.NumberInStock), rate, row.CreatedAt, row.UpdatedAt), nil
}
