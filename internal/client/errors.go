package client

import "errors"

// Sentinel errors mapped from HTTP response status codes. Callers can match
// against them with [errors.Is] to branch on failure class.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
)
