package repositories

import "artistconnect/internal/models"

// BookingRepository defines the interface for booking request data access.
// There is no Delete: requests are never removed in this design.
type BookingRepository interface {
	Create(request *models.BookingRequest) error
	GetByID(id uint) (*models.BookingRequest, error)
	UpdateStatus(id uint, status models.BookingStatus) error
	ListByArtist(artistID uint) ([]models.BookingRequest, error)
	ListByOrganizer(organizerID uint) ([]models.BookingRequest, error)
}
