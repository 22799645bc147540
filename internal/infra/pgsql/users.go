package pgsql

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const tableUsers = "users"

var userColumns = []any{"id", "name", "email", "password_hash", "is_admin", "created_at", "updated_at"}

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	stmt := q.builder.From(tableUsers).Prepared(true).
		Select(userColumns...).
		Where(goqu.C("id").Eq(id))
	return queryOne[User](ctx, db, stmt)
}

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	stmt := q.builder.From(tableUsers).Prepared(true).
		Select(userColumns...).
		Where(goqu.L("lower(email)").Eq(email))
	return queryOne[User](ctx, db, stmt)
}

func (q *Queries) InsertUser(ctx context.Context, db DBTX, u User) (User, error) {
	stmt := q.builder.Insert(tableUsers).Prepared(true).
		Rows(goqu.Record{
			"id":            u.ID,
			"name":          u.Name,
			"email":         u.Email,
			"password_hash": u.PasswordHash,
			"is_admin":      u.IsAdmin,
			"created_at":    u.CreatedAt,
			"updated_at":    u.UpdatedAt,
		}).
		Returning(userColumns...)
	return queryOne[User](ctx, db, stmt)
}
