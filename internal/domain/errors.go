package domain

import "errors"

// ErrNotFound is returned by repositories and services when the requested
// resource does not exist. Handlers map it to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by services when input fails validation
// (e.g. missing slug and source URL). Handlers map it to HTTP 422.
var ErrValidation = errors.New("validation error")
