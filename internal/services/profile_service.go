package services

import (
	"errors"
	"fmt"

	"artistconnect/internal/models"
	"artistconnect/internal/repositories"
)

// ErrArtistNotFound covers every way a public artist lookup can fail: no
// such user, user is not an artist, or the profile row is missing.
var ErrArtistNotFound = errors.New("artist not found")

// landingSampleSize caps the landing page listing.
const landingSampleSize = 6

// ProfileService handles the artist directory and profile view/edit.
type ProfileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Directory returns artist profiles matching the optional category and
// location substring filters, newest first. No filters means everyone.
func (s *ProfileService) Directory(category, location string) ([]models.ArtistProfile, error) {
	return s.profileRepo.Search(category, location)
}

// LandingSample returns a handful of profiles for the landing page.
func (s *ProfileService) LandingSample() ([]models.ArtistProfile, error) {
	return s.profileRepo.Sample(landingSampleSize)
}

// PublicProfile resolves a user id into an artist and their profile for the
// public view. Any failure along the way is ErrArtistNotFound.
func (s *ProfileService) PublicProfile(userID uint) (*models.User, *models.ArtistProfile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, ErrArtistNotFound
	}
	if user.Role != models.RoleArtist {
		return nil, nil, ErrArtistNotFound
	}
	profile, err := s.profileRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, nil, ErrArtistNotFound
	}
	return user, profile, nil
}

// OwnProfile loads the acting artist's profile for the edit form.
func (s *ProfileService) OwnProfile(actor *models.User) (*models.ArtistProfile, error) {
	return s.profileRepo.GetByUserID(actor.ID)
}

// ProfileUpdate carries the edit form fields. Every field overwrites the
// stored value; a blank submission blanks the column.
type ProfileUpdate struct {
	Category     string
	Location     string
	Bio          string
	DemoLinks    string
	Charges      string
	ProfileImage string
}

// UpdateOwn overwrites the acting artist's profile with the submitted
// values. There is no target parameter: the operation can only ever touch
// the actor's own row.
func (s *ProfileService) UpdateOwn(actor *models.User, update ProfileUpdate) (*models.ArtistProfile, error) {
	profile, err := s.profileRepo.GetByUserID(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load own profile: %w", err)
	}

	profile.Category = update.Category
	profile.Location = update.Location
	profile.Bio = update.Bio
	profile.DemoLinks = update.DemoLinks
	profile.Charges = update.Charges
	profile.ProfileImage = update.ProfileImage

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
