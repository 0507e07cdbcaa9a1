package repositories

import (
	"errors"
	"fmt"
	"strings"

	"artistconnect/internal/models"

	"gorm.io/gorm"
)

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{
		db: db,
	}
}

// GetByUserID retrieves the artist profile owned by the given user.
func (r *GORMProfileRepository) GetByUserID(userID uint) (*models.ArtistProfile, error) {
	var profile models.ArtistProfile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("artist profile for user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get artist profile for user %d: %w", userID, err)
	}
	return &profile, nil
}

// Update overwrites an existing profile. Save writes all fields, including
// zero values, which is exactly the full-overwrite edit semantics we want.
func (r *GORMProfileRepository) Update(profile *models.ArtistProfile) error {
	res := r.db.Save(profile)
	if res.Error != nil {
		return fmt.Errorf("failed to update artist profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artist profile %d for update: %w", profile.ID, ErrNotFound)
	}
	return nil
}

// Search filters profiles by category/location substring, both optional and
// combined with AND. LOWER + LIKE keeps the match case-insensitive on both
// sqlite and postgres.
func (r *GORMProfileRepository) Search(category, location string) ([]models.ArtistProfile, error) {
	query := r.db.Preload("User").Order("id DESC")
	if category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}
	if location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	var profiles []models.ArtistProfile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to search artist profiles: %w", err)
	}
	return profiles, nil
}

// Sample returns up to limit profiles for the landing page.
func (r *GORMProfileRepository) Sample(limit int) ([]models.ArtistProfile, error) {
	var profiles []models.ArtistProfile
	if err := r.db.Preload("User").Limit(limit).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to sample artist profiles: %w", err)
	}
	return profiles, nil
}
