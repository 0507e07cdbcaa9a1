package handlers

import (
	"errors"
	"log"
	"time"

	"artistconnect/internal/flash"
	"artistconnect/internal/middleware"
	"artistconnect/internal/models"
	"artistconnect/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/register", h.HandleRegisterForm)
	router.Post("/register", h.HandleRegister)
	router.Get("/login", h.HandleLoginForm)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", h.HandleLogout)
}

// RegisterForm represents the registration form fields.
type RegisterForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
	Role     string `form:"role" validate:"required,oneof=artist organizer"`
}

// HandleRegisterForm renders the empty registration form.
func (h *AuthHandler) HandleRegisterForm(c *fiber.Ctx) error {
	return render(c, "auth_register", registerBind(RegisterForm{Role: "artist"}))
}

// registerBind keeps every template key present so re-renders preserve the
// submitted values.
func registerBind(form RegisterForm) fiber.Map {
	return fiber.Map{
		"Name":  form.Name,
		"Email": form.Email,
		"Role":  form.Role,
	}
}

// HandleRegister creates the account, bootstraps the blank profile and
// starts a session. Validation problems collapse into one advisory message
// and nothing gets persisted.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var form RegisterForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing register form: %v", err)
		flash.Set(c, "danger", "Please fill all fields correctly.")
		return render(c, "auth_register", registerBind(RegisterForm{Role: "artist"}))
	}

	if err := h.validate.Struct(form); err != nil {
		flash.Set(c, "danger", "Please fill all fields correctly.")
		return render(c, "auth_register", registerBind(form))
	}

	user, err := h.authService.Register(form.Name, form.Email, form.Password, models.Role(form.Role))
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			flash.Set(c, "danger", "Email already registered.")
		} else {
			log.Printf("Error registering user: %v", err)
			flash.Set(c, "danger", "Could not create your account. Please try again.")
		}
		return render(c, "auth_register", registerBind(form))
	}

	if err := h.startSession(c, user); err != nil {
		log.Printf("Error starting session after registration: %v", err)
		flash.Set(c, "warning", "Account created. Please log in.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	flash.Set(c, "success", "Registered successfully!")
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// LoginForm represents the login form fields.
type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// HandleLoginForm renders the empty login form.
func (h *AuthHandler) HandleLoginForm(c *fiber.Ctx) error {
	return render(c, "auth_login", fiber.Map{"Email": ""})
}

// HandleLogin authenticates and starts a session. The failure message never
// says whether the account exists.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var form LoginForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing login form: %v", err)
		flash.Set(c, "danger", "Invalid credentials.")
		return render(c, "auth_login", fiber.Map{"Email": ""})
	}

	if err := h.validate.Struct(form); err != nil {
		flash.Set(c, "danger", "Invalid credentials.")
		return render(c, "auth_login", fiber.Map{"Email": form.Email})
	}

	user, err := h.authService.Login(form.Email, form.Password)
	if err != nil {
		flash.Set(c, "danger", "Invalid credentials.")
		return render(c, "auth_login", fiber.Map{"Email": form.Email})
	}

	if err := h.startSession(c, user); err != nil {
		log.Printf("Error starting session: %v", err)
		flash.Set(c, "danger", "Could not log you in. Please try again.")
		return render(c, "auth_login", fiber.Map{"Email": form.Email})
	}

	flash.Set(c, "success", "Welcome back!")
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// HandleLogout clears the session cookie unconditionally.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	flash.Set(c, "info", "Logged out.")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// startSession mints a session token for the user and sets the cookie.
func (h *AuthHandler) startSession(c *fiber.Ctx, user *models.User) error {
	token, err := h.authService.MintSession(user)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
