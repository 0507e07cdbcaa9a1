package services_test

import (
	"testing"

	"artistconnect/internal/models"
	"artistconnect/internal/repositories"
	"artistconnect/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock implementation of repositories.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(userID uint) (*models.ArtistProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArtistProfile), args.Error(1)
}

func (m *MockProfileRepository) Update(profile *models.ArtistProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Search(category, location string) ([]models.ArtistProfile, error) {
	args := m.Called(category, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ArtistProfile), args.Error(1)
}

func (m *MockProfileRepository) Sample(limit int) ([]models.ArtistProfile, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ArtistProfile), args.Error(1)
}

func TestProfileService_PublicProfile(t *testing.T) {
	mockProfiles := new(MockProfileRepository)
	mockUsers := new(MockUserRepository)
	profileService := services.NewProfileService(mockProfiles, mockUsers)

	artist := &models.User{ID: 2, Name: "Raj", Role: models.RoleArtist}
	profile := &models.ArtistProfile{ID: 1, UserID: 2, Category: "Singer", Location: "Mumbai"}

	mockUsers.On("GetByID", uint(2)).Return(artist, nil).Once()
	mockProfiles.On("GetByUserID", uint(2)).Return(profile, nil).Once()

	gotUser, gotProfile, err := profileService.PublicProfile(2)
	assert.NoError(t, err)
	assert.Equal(t, artist, gotUser)
	assert.Equal(t, profile, gotProfile)

	// An organizer id is "not found", not a different error.
	organizer := &models.User{ID: 1, Role: models.RoleOrganizer}
	mockUsers.On("GetByID", uint(1)).Return(organizer, nil).Once()
	_, _, err = profileService.PublicProfile(1)
	assert.ErrorIs(t, err, services.ErrArtistNotFound)

	// As is a missing user.
	mockUsers.On("GetByID", uint(99)).Return(nil, repositories.ErrNotFound).Once()
	_, _, err = profileService.PublicProfile(99)
	assert.ErrorIs(t, err, services.ErrArtistNotFound)

	mockUsers.AssertExpectations(t)
	mockProfiles.AssertExpectations(t)
}

func TestProfileService_UpdateOwn(t *testing.T) {
	mockProfiles := new(MockProfileRepository)
	profileService := services.NewProfileService(mockProfiles, new(MockUserRepository))

	actor := &models.User{ID: 2, Role: models.RoleArtist}
	existing := &models.ArtistProfile{
		ID:       1,
		UserID:   2,
		Category: "Singer",
		Location: "Mumbai",
		Bio:      "An old bio",
		Charges:  "30k",
	}

	mockProfiles.On("GetByUserID", uint(2)).Return(existing, nil).Once()
	mockProfiles.On("Update", mock.AnythingOfType("*models.ArtistProfile")).
		Run(func(args mock.Arguments) {
			profile := args.Get(0).(*models.ArtistProfile)
			// Full overwrite: omitted fields are blanked, not preserved.
			assert.Equal(t, "DJ", profile.Category)
			assert.Equal(t, "Delhi", profile.Location)
			assert.Empty(t, profile.Bio)
			assert.Empty(t, profile.Charges)
		}).Return(nil).Once()

	_, err := profileService.UpdateOwn(actor, services.ProfileUpdate{
		Category: "DJ",
		Location: "Delhi",
	})
	assert.NoError(t, err)
	mockProfiles.AssertExpectations(t)
}

func TestProfileService_Directory(t *testing.T) {
	mockProfiles := new(MockProfileRepository)
	profileService := services.NewProfileService(mockProfiles, new(MockUserRepository))

	results := []models.ArtistProfile{{ID: 2, Category: "DJ"}}
	mockProfiles.On("Search", "dj", "delhi").Return(results, nil).Once()

	got, err := profileService.Directory("dj", "delhi")
	assert.NoError(t, err)
	assert.Equal(t, results, got)
	mockProfiles.AssertExpectations(t)
}
