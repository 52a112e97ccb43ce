package model

import "errors"

var (
	// Business rule errors
	ErrAuthorNotFound    = errors.New("author not found")
	ErrDuplicateUsername = errors.New("author with this username already exists")
	ErrDuplicateEmail    = errors.New("author with this email already exists")
)

// ToHTTPStatus converts an author error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrDuplicateUsername), errors.Is(err, ErrDuplicateEmail):
		return 409
	default:
		return 500
	}
}
