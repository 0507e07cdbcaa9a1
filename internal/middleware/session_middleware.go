package middleware

import (
	"errors"

	"artistconnect/internal/flash"
	"artistconnect/internal/models"
	"artistconnect/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

const actorKey = "actor"

// LoadActor resolves the acting user from the session cookie on every
// request and stashes it in locals. Resolution always hits the identity
// store; an invalid or stale cookie just leaves the request anonymous.
func LoadActor(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(SessionCookie); token != "" {
			if user, err := authService.CurrentUser(token); err == nil {
				c.Locals(actorKey, user)
			}
		}
		return c.Next()
	}
}

// Actor returns the acting user resolved by LoadActor, or nil for an
// anonymous request.
func Actor(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(actorKey).(*models.User); ok {
		return user
	}
	return nil
}

// RequireRole is the HTTP face of the authorization gate. An anonymous
// request is sent to the login page, a wrong-role request back home; both
// carry an advisory flash and never reach the handler.
func RequireRole(required models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := services.Authorize(Actor(c), required)
		switch {
		case errors.Is(err, services.ErrLoginRequired):
			flash.Set(c, "warning", "Please log in first.")
			return c.Redirect("/login", fiber.StatusSeeOther)
		case errors.Is(err, services.ErrNotAuthorized):
			flash.Set(c, "danger", "Not authorized for this action.")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireLogin admits any logged-in user regardless of role.
func RequireLogin() fiber.Handler {
	return RequireRole("")
}
