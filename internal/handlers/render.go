package handlers

import (
	"artistconnect/internal/flash"
	"artistconnect/internal/middleware"
	"artistconnect/internal/views"

	"github.com/gofiber/fiber/v2"
)

// render draws a page inside the main layout, injecting the acting user
// and any pending flash message.
func render(c *fiber.Ctx, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["Actor"] = middleware.Actor(c)
	if category, message, ok := flash.Pop(c); ok {
		bind["FlashCategory"] = category
		bind["Flash"] = message
	}
	return c.Render(name, bind, views.MainLayout)
}
