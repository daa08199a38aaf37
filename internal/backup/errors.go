package backup

import "fmt"

// ErrorKind selects one variant of the closed export-failure taxonomy.
type ErrorKind string

const (
	// ZipError covers archive-format failures while writing entries.
	ZipError ErrorKind = "zip"
	// IOError covers filesystem failures while reading sources or writing
	// the archive file.
	IOError ErrorKind = "io"
	// OtherError covers everything else (e.g. metadata encoding).
	OtherError ErrorKind = "other"
)

// Error is the typed export failure returned by [Exporter.Export]. It is
// never retried automatically; callers inspect Kind to report the failure.
type Error struct {
	// Kind is the failure variant.
	Kind ErrorKind
	// Msg is a human-readable description.
	Msg string

	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("database backup %s error: %s", e.Kind, e.Msg)
}

// Unwrap exposes the underlying cause for [errors.Is]/[errors.As].
func (e *Error) Unwrap() error {
	return e.cause
}

func zipError(err error) *Error {
	return &Error{Kind: ZipError, Msg: err.Error(), cause: err}
}

func ioError(err error) *Error {
	return &Error{Kind: IOError, Msg: err.Error(), cause: err}
}

func otherError(err error) *Error {
	return &Error{Kind: OtherError, Msg: err.Error(), cause: err}
}
