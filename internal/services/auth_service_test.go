package services_test

import (
	"io"
	"log"
	"os"
	"testing"

	"artistconnect/internal/models"
	"artistconnect/internal/repositories"
	"artistconnect/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateArtist(user *models.User, profile *models.ArtistProfile) error {
	args := m.Called(user, profile)
	return args.Error(0)
}

func (m *MockUserRepository) CreateOrganizer(user *models.User, profile *models.OrganizerProfile) error {
	args := m.Called(user, profile)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_session_secret")

	// Successful artist registration: email is lowercased before the
	// duplicate check, the password is stored hashed, and the blank
	// profile carries the placeholder defaults.
	mockRepo.On("GetByEmail", "raj@x.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("CreateArtist", mock.AnythingOfType("*models.User"), mock.AnythingOfType("*models.ArtistProfile")).
		Run(func(args mock.Arguments) {
			user := args.Get(0).(*models.User)
			profile := args.Get(1).(*models.ArtistProfile)
			assert.Equal(t, "raj@x.com", user.Email)
			assert.Equal(t, models.RoleArtist, user.Role)
			assert.NotEqual(t, "pw123", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123")))
			assert.Equal(t, "Singer", profile.Category)
			assert.Equal(t, "Mumbai", profile.Location)
			assert.Empty(t, profile.Bio)
		}).Return(nil).Once()

	user, err := authService.Register("Raj", "Raj@X.com", "pw123", models.RoleArtist)
	assert.NoError(t, err)
	assert.Equal(t, "raj@x.com", user.Email)
	mockRepo.AssertExpectations(t)

	// Organizer registration creates the organizer profile instead.
	mockRepo.On("GetByEmail", "priya@x.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("CreateOrganizer", mock.AnythingOfType("*models.User"), mock.AnythingOfType("*models.OrganizerProfile")).Return(nil).Once()

	_, err = authService.Register("Priya", "priya@x.com", "pw123", models.RoleOrganizer)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Duplicate email: nothing is created.
	mockRepo.On("GetByEmail", "raj@x.com").Return(&models.User{ID: 1, Email: "raj@x.com"}, nil).Once()
	_, err = authService.Register("Impostor", "RAJ@x.com", "pw456", models.RoleArtist)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)

	// Invalid role: refused before any repository call.
	_, err = authService.Register("Eve", "eve@x.com", "pw123", models.Role("admin"))
	assert.ErrorIs(t, err, services.ErrInvalidRole)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_session_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           7,
		Name:         "Raj",
		Email:        "raj@x.com",
		PasswordHash: string(hashedPassword),
		Role:         models.RoleArtist,
	}

	// Successful login, with the email normalized first.
	mockRepo.On("GetByEmail", "raj@x.com").Return(user, nil).Once()
	got, err := authService.Login(" Raj@X.com ", "pw123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	mockRepo.AssertExpectations(t)

	// Wrong password and unknown email return the same error.
	mockRepo.On("GetByEmail", "raj@x.com").Return(user, nil).Once()
	_, err = authService.Login("raj@x.com", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.On("GetByEmail", "ghost@x.com").Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.Login("ghost@x.com", "pw123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_SessionRoundTrip(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_session_secret")

	user := &models.User{ID: 42, Name: "Raj", Role: models.RoleArtist}

	token, err := authService.MintSession(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// The token resolves back to the user via a fresh identity lookup.
	mockRepo.On("GetByID", uint(42)).Return(user, nil).Once()
	got, err := authService.CurrentUser(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	mockRepo.AssertExpectations(t)

	// A token for a vanished user no longer resolves.
	mockRepo.On("GetByID", uint(42)).Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.CurrentUser(token)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)

	// A token signed with a different secret is rejected outright.
	otherService := services.NewAuthService(mockRepo, "other_secret")
	forged, err := otherService.MintSession(user)
	assert.NoError(t, err)
	_, err = authService.CurrentUser(forged)
	assert.Error(t, err)
}
