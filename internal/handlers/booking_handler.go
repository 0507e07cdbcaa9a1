package handlers

import (
	"errors"
	"log"

	"artistconnect/internal/flash"
	"artistconnect/internal/middleware"
	"artistconnect/internal/models"
	"artistconnect/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles booking request creation, the accept/reject
// transitions and the dashboard.
type BookingHandler struct {
	bookingService *services.BookingService
	validate       *validator.Validate
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the booking routes with the Fiber app.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", middleware.RequireLogin(), h.HandleDashboard)
	router.Get("/request/:req_id/accept", middleware.RequireRole(models.RoleArtist), h.HandleAccept)
	router.Get("/request/:req_id/reject", middleware.RequireRole(models.RoleArtist), h.HandleReject)
	router.Get("/request/:artist_user_id", middleware.RequireRole(models.RoleOrganizer), h.HandleRequestForm)
	router.Post("/request/:artist_user_id", middleware.RequireRole(models.RoleOrganizer), h.HandleRequestCreate)
}

// HandleRequestForm renders the booking request form for one artist.
func (h *BookingHandler) HandleRequestForm(c *fiber.Ctx) error {
	artist, err := h.targetArtist(c)
	if err != nil {
		flash.Set(c, "warning", "Artist not found.")
		return c.Redirect("/artists", fiber.StatusSeeOther)
	}

	return render(c, "request_create", requestBind(artist, BookingForm{}))
}

// BookingForm represents the booking request form fields. Date and venue
// are required; budget and message are free extras.
type BookingForm struct {
	EventDate string `form:"event_date" validate:"required"`
	Venue     string `form:"venue" validate:"required"`
	Budget    string `form:"budget"`
	Message   string `form:"message"`
}

// requestBind keeps every template key present so re-renders preserve the
// submitted values.
func requestBind(artist *models.User, form BookingForm) fiber.Map {
	return fiber.Map{
		"Artist":    artist,
		"EventDate": form.EventDate,
		"Venue":     form.Venue,
		"Budget":    form.Budget,
		"Message":   form.Message,
	}
}

// HandleRequestCreate creates a pending booking request from the acting
// organizer to the target artist.
func (h *BookingHandler) HandleRequestCreate(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	artist, err := h.targetArtist(c)
	if err != nil {
		flash.Set(c, "warning", "Artist not found.")
		return c.Redirect("/artists", fiber.StatusSeeOther)
	}

	var form BookingForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing booking form: %v", err)
		flash.Set(c, "danger", "Please provide event date and venue.")
		return render(c, "request_create", requestBind(artist, BookingForm{}))
	}

	if err := h.validate.Struct(form); err != nil {
		flash.Set(c, "danger", "Please provide event date and venue.")
		return render(c, "request_create", requestBind(artist, form))
	}

	_, err = h.bookingService.CreateRequest(actor, artist.ID, form.EventDate, form.Venue, form.Budget, form.Message)
	if err != nil {
		log.Printf("Error creating booking request: %v", err)
		if errors.Is(err, services.ErrArtistNotFound) {
			flash.Set(c, "warning", "Artist not found.")
			return c.Redirect("/artists", fiber.StatusSeeOther)
		}
		flash.Set(c, "danger", "Could not send your request. Please try again.")
		return render(c, "request_create", requestBind(artist, form))
	}

	flash.Set(c, "success", "Request sent to artist!")
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// HandleDashboard renders the role-specific request list.
func (h *BookingHandler) HandleDashboard(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	requests, err := h.bookingService.DashboardFor(actor)
	if err != nil {
		log.Printf("Error loading dashboard for user %d: %v", actor.ID, err)
		flash.Set(c, "danger", "Something went wrong. Please try again.")
		requests = nil
	}

	page := "dashboard_organizer"
	if actor.IsArtist() {
		page = "dashboard_artist"
	}
	return render(c, page, fiber.Map{"Requests": requests})
}

// HandleAccept performs the accept transition on the acting artist's own
// request.
func (h *BookingHandler) HandleAccept(c *fiber.Ctx) error {
	return h.decide(c, models.StatusAccepted, "Request accepted!")
}

// HandleReject performs the reject transition on the acting artist's own
// request.
func (h *BookingHandler) HandleReject(c *fiber.Ctx) error {
	return h.decide(c, models.StatusRejected, "Request rejected.")
}

// decide is the shared accept/reject path. A foreign request and a missing
// request get the same message.
func (h *BookingHandler) decide(c *fiber.Ctx, status models.BookingStatus, successMessage string) error {
	actor := middleware.Actor(c)

	reqID, err := c.ParamsInt("req_id")
	if err != nil || reqID < 1 {
		flash.Set(c, "warning", "Request not found.")
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	_, err = h.bookingService.Decide(actor, uint(reqID), status)
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		flash.Set(c, "warning", "Request not found.")
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	case errors.Is(err, services.ErrAlreadyDecided):
		flash.Set(c, "warning", "Request already finalized.")
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	case err != nil:
		log.Printf("Error updating request %d: %v", reqID, err)
		flash.Set(c, "danger", "Something went wrong. Please try again.")
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	flash.Set(c, "success", successMessage)
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// targetArtist reads the artist user id from the route and resolves it.
func (h *BookingHandler) targetArtist(c *fiber.Ctx) (*models.User, error) {
	artistUserID, err := c.ParamsInt("artist_user_id")
	if err != nil || artistUserID < 1 {
		return nil, services.ErrArtistNotFound
	}
	return h.bookingService.TargetArtist(uint(artistUserID))
}
