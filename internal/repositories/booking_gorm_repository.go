package repositories

import (
	"errors"
	"fmt"

	"artistconnect/internal/models"

	"gorm.io/gorm"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// Create inserts a new booking request.
func (r *GORMBookingRepository) Create(request *models.BookingRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create booking request: %w", err)
	}
	return nil
}

// GetByID retrieves a single booking request by its ID.
func (r *GORMBookingRepository) GetByID(id uint) (*models.BookingRequest, error) {
	var request models.BookingRequest
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking request %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking request %d: %w", id, err)
	}
	return &request, nil
}

// UpdateStatus sets the status of an existing booking request. Only the
// status column is written; all other fields stay as created.
func (r *GORMBookingRepository) UpdateStatus(id uint, status models.BookingStatus) error {
	res := r.db.Model(&models.BookingRequest{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update booking request %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking request %d for status update: %w", id, ErrNotFound)
	}
	return nil
}

// ListByArtist returns the requests targeting an artist, newest first.
func (r *GORMBookingRepository) ListByArtist(artistID uint) ([]models.BookingRequest, error) {
	var requests []models.BookingRequest
	err := r.db.Preload("Organizer").Where("artist_id = ?", artistID).Order("id DESC").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list booking requests for artist %d: %w", artistID, err)
	}
	return requests, nil
}

// ListByOrganizer returns the requests an organizer created, newest first.
func (r *GORMBookingRepository) ListByOrganizer(organizerID uint) ([]models.BookingRequest, error) {
	var requests []models.BookingRequest
	err := r.db.Preload("Artist").Where("organizer_id = ?", organizerID).Order("id DESC").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list booking requests for organizer %d: %w", organizerID, err)
	}
	return requests, nil
}
