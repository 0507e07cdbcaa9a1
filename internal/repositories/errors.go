package repositories

import "errors"

// ErrNotFound is returned when a requested row does not exist. Callers
// that must not leak which rows exist map it to a generic message.
var ErrNotFound = errors.New("record not found")
