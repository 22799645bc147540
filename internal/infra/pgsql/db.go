// Package pgsql holds the SQL for every collection. Statements are built with
// goqu in prepared mode and rows are mapped with pgx's struct scanning.
package pgsql

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const dialectPostgres = "postgres"

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	builder goqu.DialectWrapper
}

func New() *Queries {
	return &Queries{builder: goqu.Dialect(dialectPostgres)}
}

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

func toSQL(stmt sqlBuilder) (string, []any, error) {
	query, args, err := stmt.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("building query: %w", err)
	}
	return query, args, nil
}

func queryOne[T any](ctx context.Context, db DBTX, stmt sqlBuilder) (T, error) {
	var zero T
	query, args, err := toSQL(stmt)
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
}

func queryMany[T any](ctx context.Context, db DBTX, stmt sqlBuilder) ([]T, error) {
	query, args, err := toSQL(stmt)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func exec(ctx context.Context, db DBTX, stmt sqlBuilder) (int64, error) {
	query, args, err := toSQL(stmt)
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
