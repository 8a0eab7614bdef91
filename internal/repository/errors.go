package repository

import "errors"

// ErrNotFound is returned by every repository when a lookup matches no row.
// Handlers map it to HTTP 404.
var ErrNotFound = errors.New("record not found")
