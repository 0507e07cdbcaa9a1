package services

import (
	"errors"

	"artistconnect/internal/models"
)

// Refusal reasons returned by Authorize. The web layer maps them to
// redirects; nothing here knows about HTTP.
var (
	// ErrLoginRequired means no actor could be resolved from the session.
	ErrLoginRequired = errors.New("login required")
	// ErrNotAuthorized means the actor's role does not match the one the
	// operation requires.
	ErrNotAuthorized = errors.New("not authorized")
)

// Authorize is the authorization gate: given the actor resolved from the
// current session (nil for anonymous) and the role an operation requires,
// it decides whether the operation may proceed. An empty required role
// means any logged-in user will do.
func Authorize(actor *models.User, required models.Role) error {
	if actor == nil {
		return ErrLoginRequired
	}
	if required != "" && actor.Role != required {
		return ErrNotAuthorized
	}
	return nil
}
