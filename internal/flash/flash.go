// Package flash implements one-shot advisory messages carried in a
// read-once cookie. The session cookie itself holds only the user id, so
// flashes get their own cookie, cleared as soon as a page consumes it.
package flash

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	cookieName = "flash"
	localsKey  = "flash"
)

type message struct {
	category string
	text     string
}

// Set stores a flash message for the next rendered page — either later in
// the same request (re-rendered form) or after a redirect. Category follows
// the usual vocabulary: success, info, warning, danger.
func Set(c *fiber.Ctx, category, text string) {
	c.Locals(localsKey, message{category: category, text: text})
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + text))
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Pop returns and clears the pending flash message, if any. A message set
// during this request wins over one carried in from the previous request.
func Pop(c *fiber.Ctx) (category, text string, ok bool) {
	if m, isSet := c.Locals(localsKey).(message); isSet {
		c.Locals(localsKey, nil)
		clearCookie(c)
		return m.category, m.text, true
	}

	value := c.Cookies(cookieName)
	if value == "" {
		return "", "", false
	}
	clearCookie(c)

	decoded, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
