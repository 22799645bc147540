package user

import (
	"regexp"
	"strings"

	"vidly/internal/pkg/errs"
)

var (
	ErrInvalidName     = errs.NewMarked("name must be between 5 and 50 characters", errs.ErrInvalidInput)
	ErrInvalidEmail    = errs.NewMarked("invalid email format", errs.ErrInvalidInput)
	ErrPasswordTooWeak = errs.NewMarked("password must be between 5 and 255 characters", errs.ErrInvalidInput)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail normalizes to lower case; uniqueness is enforced on that form.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 5 || len(s) > 255 || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 5 || len(s) > 255 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
