package response

import (
	"vidly/internal/domain/user"
	"vidly/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID      uuid.UUID `json:"_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin,omitempty"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{ID: u.ID(), Name: u.Name(), Email: u.Email().Value(), IsAdmin: u.IsAdmin()}
}

func FromUserView(v *queries.UserView) *UserResponse {
	return copyInto(&UserResponse{}, v)
}
