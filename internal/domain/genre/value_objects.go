package genre

import (
	"strings"
	"unicode/utf8"

	"vidly/internal/pkg/errs"
)

const (
	MinNameLength = 5
	MaxNameLength = 50
)

var ErrInvalidName = errs.NewMarked("genre name must be between 5 and 50 characters", errs.ErrInvalidInput)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < MinNameLength || n > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }
