package auth

import (
	"vidly/internal/domain/user"
	"vidly/internal/pkg/errs"
)

// Returned for unknown email and wrong password alike.
var ErrInvalidCredentials = errs.NewMarked("Invalid email or password.", errs.ErrInvalidInput)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}
