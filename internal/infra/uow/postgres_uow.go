package uow

import (
	"context"
	"errors"
	"log/slog"

	"vidly/internal/infra/pgsql"
	"vidly/internal/infra/repository"
	"vidly/internal/pkg/errs"
	"vidly/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool   TxBeginner
	q      *pgsql.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool TxBeginner, q *pgsql.Queries, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
	}
}

// Within runs fn once. Row locks taken inside fn serialize competing writers,
// so a failed attempt is reported rather than repeated.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			u.logger.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

type pgTx struct {
	dbtx pgsql.DBTX
	q    *pgsql.Queries

	// Lazy-initialized repositories
	genreRepo    shared.GenreRepository
	movieRepo    shared.MovieRepository
	customerRepo shared.CustomerRepository
	rentalRepo   shared.RentalRepository
	userRepo     shared.UserRepository
}

func (t *pgTx) Genres() shared.GenreRepository {
	if t.genreRepo == nil {
		t.genreRepo = repository.NewGenreRepository(t.q, t.dbtx)
	}
	return t.genreRepo
}

func (t *pgTx) Movies() shared.MovieRepository {
	if t.movieRepo == nil {
		t.movieRepo = repository.NewMovieRepository(t.q, t.dbtx)
	}
	return t.movieRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.q, t.dbtx)
	}
	return t.customerRepo
}

func (t *pgTx) Rentals() shared.RentalRepository {
	if t.rentalRepo == nil {
		t.rentalRepo = repository.NewRentalRepository(t.q, t.dbtx)
	}
	return t.rentalRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.userRepo
}
