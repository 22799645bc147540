package shared

import "vidly/internal/pkg/errs"

// Messages double as response bodies.
var (
	ErrGenreNotFound    = errs.NewMarked("The genre with the given ID was not found.", errs.ErrNotFound)
	ErrMovieNotFound    = errs.NewMarked("The movie with the given ID was not found.", errs.ErrNotFound)
	ErrCustomerNotFound = errs.NewMarked("The customer with the given ID was not found.", errs.ErrNotFound)
	ErrRentalNotFound   = errs.NewMarked("The rental with the given ID was not found.", errs.ErrNotFound)
	ErrUserNotFound     = errs.NewMarked("The user with the given ID was not found.", errs.ErrNotFound)

	ErrInvalidGenre    = errs.NewMarked("Invalid genre.", errs.ErrInvalidInput)
	ErrInvalidMovie    = errs.NewMarked("Invalid movie.", errs.ErrInvalidInput)
	ErrInvalidCustomer = errs.NewMarked("Invalid customer.", errs.ErrInvalidInput)
)
