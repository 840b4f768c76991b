package services

import "errors"

var (
	// ErrInvalidCredentials is returned on a failed login. It deliberately
	// does not say whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when a bearer token does not resolve to an admin.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict is returned when registering a username that already exists.
	ErrConflict = errors.New("conflict")

	// ErrInvalidStatus is returned when an order update carries an unknown status value.
	ErrInvalidStatus = errors.New("invalid order status")
)
