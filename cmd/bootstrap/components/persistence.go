package components

import (
	"vidly/internal/infra/pgsql"
	"vidly/internal/infra/readstore"
	"vidly/internal/infra/uow"
	"vidly/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Genre
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.GenreReadQueries)),
		),
		fx.Annotate(
			readstore.NewGenreReadStore,
			fx.As(new(queries.GenreReadStore)),
		),
		// Movie
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MovieReadQueries)),
		),
		fx.Annotate(
			readstore.NewMovieReadStore,
			fx.As(new(queries.MovieReadStore)),
		),
		// Customer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CustomerReadQueries)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		// Rental
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RentalReadQueries)),
		),
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Write repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewTxBeginner,
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) uow.TxBeginner {
	return pool
}
