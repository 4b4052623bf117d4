package store

import "errors"

// Sentinel errors returned by store operations. Handlers match these with
// errors.Is to pick response statuses.
var (
	// ErrNotFound is returned when a row does not exist or is not owned by
	// the requesting user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart is returned by Checkout when the user has no cart rows.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingFields is returned when required input is empty after
	// trimming whitespace.
	ErrMissingFields = errors.New("missing required fields")

	// ErrDuplicateEmail is returned by CreateUser for an already registered
	// email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned by AuthenticateUser for an unknown
	// email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
