package repositories

import "artistconnect/internal/models"

// ProfileRepository defines the interface for artist profile data access.
type ProfileRepository interface {
	GetByUserID(userID uint) (*models.ArtistProfile, error)
	Update(profile *models.ArtistProfile) error
	// Search returns artist profiles whose category and location contain
	// the given substrings (case-insensitive, empty filter matches all),
	// newest profile first.
	Search(category, location string) ([]models.ArtistProfile, error)
	// Sample returns up to limit profiles for the landing page.
	Sample(limit int) ([]models.ArtistProfile, error)
}
