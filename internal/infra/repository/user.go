package repository

import (
	"context"

	"vidly/internal/domain/user"
	"vidly/internal/infra"
	"vidly/internal/infra/pgsql"
	"vidly/internal/infra/repository/converter"
)

type UserWriteQueries interface {
	InsertUser(ctx context.Context, db pgsql.DBTX, u pgsql.User) (pgsql.User, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      pgsql.DBTX
}

func NewUserRepository(queries UserWriteQueries, db pgsql.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.queries.InsertUser(ctx, r.db, converter.UserToRow(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
