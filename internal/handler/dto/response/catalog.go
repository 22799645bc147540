package response

import (
	"vidly/internal/domain/customer"
	"vidly/internal/domain/genre"
	"vidly/internal/domain/movie"
	"vidly/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GenreResponse struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"name"`
}

type MovieResponse struct {
	ID              uuid.UUID     `json:"_id"`
	Title           string        `json:"title"`
	Genre           GenreResponse `json:"genre"`
	NumberInStock   int           `json:"numberInStock"`
	DailyRentalRate float64       `json:"dailyRentalRate"`
}

type CustomerResponse struct {
	ID     uuid.UUID `json:"_id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	IsGold bool      `json:"isGold"`
}

func FromGenre(g *genre.Genre) *GenreResponse {
	return &GenreResponse{ID: g.ID(), Name: g.Name().String()}
}

func FromGenreView(v *queries.GenreView) *GenreResponse {
	return copyInto(&GenreResponse{}, v)
}

func FromGenreViews(vs []*queries.GenreView) []*GenreResponse {
	out := make([]*GenreResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromGenreView(v))
	}
	return out
}

func FromMovie(m *movie.Movie) *MovieResponse {
	g := m.Genre()
	return &MovieResponse{
		ID:              m.ID(),
		Title:           m.Title(),
		Genre:           GenreResponse{ID: g.ID, Name: g.Name},
		NumberInStock:   m.NumberInStock(),
		DailyRentalRate: m.DailyRentalRate().Decimal(),
	}
}

func FromMovieView(v *queries.MovieView) *MovieResponse {
	return copyInto(&MovieResponse{}, v)
}

func FromMovieViews(vs []*queries.MovieView) []*MovieResponse {
	out := make([]*MovieResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromMovieView(v))
	}
	return out
}

func FromCustomer(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{ID: c.ID(), Name: c.Name(), Phone: c.Phone(), IsGold: c.IsGold()}
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	return copyInto(&CustomerResponse{}, v)
}

func FromCustomerViews(vs []*queries.CustomerView) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromCustomerView(v))
	}
	return out
}

// copyInto copies same-named fields. Views and responses share their shape,
// so a failure here is a programming error.
func copyInto[T any](dst *T, src any) *T {
	if err := copier.Copy(dst, src); err != nil {
		panic(err)
	}
	return dst
}
