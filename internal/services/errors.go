package services

import "errors"

// Error kinds surfaced by the service layer. Handlers translate them
// into HTTP status codes; anything unwrapped is an internal error.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
)
