package repositories

import "artistconnect/internal/models"

// UserRepository defines the interface for identity data access.
// Registration always creates the user together with its blank profile,
// so the two creation methods are transactional by contract.
type UserRepository interface {
	CreateArtist(user *models.User, profile *models.ArtistProfile) error
	CreateOrganizer(user *models.User, profile *models.OrganizerProfile) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
