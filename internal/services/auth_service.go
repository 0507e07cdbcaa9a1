package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"artistconnect/internal/models"
	"artistconnect/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Errors surfaced by registration and login. Login failures collapse into
// one message on purpose: the caller must not learn whether the account
// exists.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration, login and the session cookie tokens.
type AuthService struct {
	userRepo      repositories.UserRepository
	sessionSecret []byte
	sessionDurat  time.Duration // Duration for which a session token is valid
}

// NewAuthService creates a new AuthService. The secret signs the session
// cookie tokens.
func NewAuthService(userRepo repositories.UserRepository, sessionSecret string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		sessionSecret: []byte(sessionSecret),
		sessionDurat:  24 * time.Hour, // Session valid for 24 hours
	}
}

// Register creates a new user and, in the same transaction, the blank
// profile matching their role. The email is normalized to lowercase before
// the uniqueness check. Artist profiles start with placeholder defaults.
func (s *AuthService) Register(name, email, password string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	email = strings.ToLower(strings.TrimSpace(email))

	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	switch role {
	case models.RoleArtist:
		profile := &models.ArtistProfile{Category: "Singer", Location: "Mumbai"}
		if err := s.userRepo.CreateArtist(user, profile); err != nil {
			return nil, fmt.Errorf("failed to register artist: %w", err)
		}
	case models.RoleOrganizer:
		profile := &models.OrganizerProfile{}
		if err := s.userRepo.CreateOrganizer(user, profile); err != nil {
			return nil, fmt.Errorf("failed to register organizer: %w", err)
		}
	}

	return user, nil
}

// Login authenticates a user by email and password. Unknown email and wrong
// password both return ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// MintSession issues a signed session token bound to the user id. The token
// is the entire server-side session state; it goes into a cookie and is
// re-verified on every request.
func (s *AuthService) MintSession(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     now.Add(s.sessionDurat).Unix(),
		"iat":     now.Unix(),
		"jti":     uuid.New().String(),
	})

	tokenString, err := token.SignedString(s.sessionSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// CurrentUser resolves the acting user from a session token. The identity
// store is queried on every call; a stale token for a vanished user yields
// an error, never a cached actor.
func (s *AuthService) CurrentUser(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.sessionSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		log.Printf("Session token with malformed user_id claim: %v", claims["user_id"])
		return nil, fmt.Errorf("invalid session token")
	}

	user, err := s.userRepo.GetByID(uint(rawID))
	if err != nil {
		return nil, fmt.Errorf("session user not found: %w", err)
	}

	return user, nil
}
