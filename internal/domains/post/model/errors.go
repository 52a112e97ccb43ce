package model

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
)

// ToHTTPStatus converts a post error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return 404
	default:
		return 500
	}
}
