package adapter

import "errors"

// Registration rejection sentinels. These are matched from the server's
// error label, not the HTTP status alone, and are pattern-matched by the
// account supervisor into registration states rather than failures.
var (
	// ErrMissingAuth is returned when the server rejects a client
	// registration because re-authentication with a password is required.
	ErrMissingAuth = errors.New("authentication missing")

	// ErrTooManyClients is returned when the server rejects a client
	// registration because the account already holds the maximum number of
	// registered clients.
	ErrTooManyClients = errors.New("too many clients")
)

// Status-based transport sentinels mapped by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
