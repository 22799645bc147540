package converter

import (
	"vidly/internal/domain/user"
	"vidly/internal/infra/pgsql"
)

func UserToRow(u *user.User) pgsql.User {
	return pgsql.User{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		IsAdmin:      u.IsAdmin(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}
