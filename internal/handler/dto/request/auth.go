package request

import (
	"vidly/internal/domain/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,min=5,max=255,email"`
	Password string `json:"password" binding:"required,min=5,max=255"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}
