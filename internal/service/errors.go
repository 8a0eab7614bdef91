package service

import "errors"

// ErrForbidden is returned when a row exists but belongs to a different user.
// Handlers map it to HTTP 403. Nothing about the row is leaked beyond its
// existence.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidInput marks payload errors that survive binding-level validation,
// e.g. an unparseable amount. Handlers map it to HTTP 400; anything else from
// a create path is a 500.
var ErrInvalidInput = errors.New("invalid input")
