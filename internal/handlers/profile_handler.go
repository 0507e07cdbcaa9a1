package handlers

import (
	"fmt"
	"log"

	"artistconnect/internal/flash"
	"artistconnect/internal/middleware"
	"artistconnect/internal/models"
	"artistconnect/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles the landing page, the artist directory and the
// profile view/edit pages.
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// RegisterRoutes registers the profile routes with the Fiber app.
// /artist/profile must come before /artist/:user_id so "profile" is not
// read as a user id.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/artists", h.HandleDirectory)
	router.Get("/artist/profile", middleware.RequireRole(models.RoleArtist), h.HandleEditForm)
	router.Post("/artist/profile", middleware.RequireRole(models.RoleArtist), h.HandleEdit)
	router.Get("/artist/:user_id", h.HandlePublicProfile)
}

// HandleIndex renders the landing page with a small sample of artists.
func (h *ProfileHandler) HandleIndex(c *fiber.Ctx) error {
	artists, err := h.profileService.LandingSample()
	if err != nil {
		log.Printf("Error loading landing sample: %v", err)
		artists = nil
	}
	return render(c, "index", fiber.Map{"TopArtists": artists})
}

// HandleDirectory renders the searchable artist directory. Both filters are
// optional substrings, combined with AND.
func (h *ProfileHandler) HandleDirectory(c *fiber.Ctx) error {
	category := c.Query("category")
	location := c.Query("location")

	artists, err := h.profileService.Directory(category, location)
	if err != nil {
		log.Printf("Error searching directory: %v", err)
		flash.Set(c, "danger", "Something went wrong. Please try again.")
		artists = nil
	}

	return render(c, "artists_list", fiber.Map{
		"Artists":       artists,
		"QueryCategory": category,
		"QueryLocation": location,
	})
}

// HandlePublicProfile renders one artist's public profile page.
func (h *ProfileHandler) HandlePublicProfile(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil || userID < 1 {
		flash.Set(c, "warning", "Artist not found.")
		return c.Redirect("/artists", fiber.StatusSeeOther)
	}

	artist, profile, err := h.profileService.PublicProfile(uint(userID))
	if err != nil {
		flash.Set(c, "warning", "Artist not found.")
		return c.Redirect("/artists", fiber.StatusSeeOther)
	}

	return render(c, "artist_profile_view", fiber.Map{
		"Artist":  artist,
		"Profile": profile,
	})
}

// HandleEditForm renders the acting artist's profile edit form.
func (h *ProfileHandler) HandleEditForm(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	profile, err := h.profileService.OwnProfile(actor)
	if err != nil {
		log.Printf("Error loading profile for user %d: %v", actor.ID, err)
		flash.Set(c, "danger", "Something went wrong. Please try again.")
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	return render(c, "artist_profile_edit", fiber.Map{"Profile": profile})
}

// ProfileForm represents the edit form fields. No field is required: the
// edit is a full overwrite and blanks stay blank.
type ProfileForm struct {
	Category     string `form:"category"`
	Location     string `form:"location"`
	Bio          string `form:"bio"`
	DemoLinks    string `form:"demo_links"`
	Charges      string `form:"charges"`
	ProfileImage string `form:"profile_image"`
}

// HandleEdit overwrites the acting artist's profile with the submitted
// values and redirects to their public page.
func (h *ProfileHandler) HandleEdit(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	var form ProfileForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing profile form: %v", err)
		flash.Set(c, "danger", "Please fill the form correctly.")
		return c.Redirect("/artist/profile", fiber.StatusSeeOther)
	}

	_, err := h.profileService.UpdateOwn(actor, services.ProfileUpdate{
		Category:     form.Category,
		Location:     form.Location,
		Bio:          form.Bio,
		DemoLinks:    form.DemoLinks,
		Charges:      form.Charges,
		ProfileImage: form.ProfileImage,
	})
	if err != nil {
		log.Printf("Error updating profile for user %d: %v", actor.ID, err)
		flash.Set(c, "danger", "Could not save your profile. Please try again.")
		return c.Redirect("/artist/profile", fiber.StatusSeeOther)
	}

	flash.Set(c, "success", "Profile updated!")
	return c.Redirect(profileURL(actor.ID), fiber.StatusSeeOther)
}

func profileURL(userID uint) string {
	return fmt.Sprintf("/artist/%d", userID)
}
