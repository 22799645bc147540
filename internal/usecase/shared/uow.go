package shared

import (
	"context"

	"vidly/internal/domain/customer"
	"vidly/internal/domain/genre"
	"vidly/internal/domain/movie"
	"vidly/internal/domain/rental"
	"vidly/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one READ COMMITTED transaction. It is never retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Genres() GenreRepository
	Movies() MovieRepository
	Customers() CustomerRepository
	Rentals() RentalRepository
	Users() UserRepository
}

type GenreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error)
	Create(ctx context.Context, g *genre.Genre) error
	Update(ctx context.Context, g *genre.Genre) error
	Delete(ctx context.Context, id uuid.UUID) (*genre.Genre, error)
}

type MovieRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*movie.Movie, error)
	// FindForUpdate locks the movie row until the transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*movie.Movie, error)
	Create(ctx context.Context, m *movie.Movie) error
	Update(ctx context.Context, m *movie.Movie) error
	Delete(ctx context.Context, id uuid.UUID) (*movie.Movie, error)
	IncrementStock(ctx context.Context, id uuid.UUID) (bool, error)
	DecrementStock(ctx context.Context, id uuid.UUID) (bool, error)
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	// FindForShare keeps the customer from being deleted while a rental references it.
	FindForShare(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	Create(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type RentalRepository interface {
	// LookupForUpdate prefers the open rental of the pair and falls back to the
	// latest closed one. The returned row is locked.
	LookupForUpdate(ctx context.Context, customerID, movieID uuid.UUID) (*rental.Rental, error)
	Create(ctx context.Context, r *rental.Rental) error
	// Close persists a returned rental only if it is still open in the store.
	Close(ctx context.Context, r *rental.Rental) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}
