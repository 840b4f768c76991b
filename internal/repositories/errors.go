package repositories

import "errors"

// ErrNotFound is returned when no document matches the requested identifier.
// Implementations wrap it with the entity and ID for context.
var ErrNotFound = errors.New("not found")
