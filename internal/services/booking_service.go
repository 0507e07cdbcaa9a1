package services

import (
	"errors"
	"fmt"
	"log"

	"artistconnect/internal/models"
	"artistconnect/internal/repositories"
	"artistconnect/pkg/rabbitmq"
)

// Errors surfaced by the booking lifecycle. ErrRequestNotFound covers both
// a genuinely missing request and one owned by a different artist, so a
// caller cannot probe which ids exist.
var (
	ErrRequestNotFound = errors.New("request not found")
	ErrAlreadyDecided  = errors.New("request already finalized")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

// BookingService handles the booking request lifecycle:
// pending -> accepted | rejected, with both terminal.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	userRepo    repositories.UserRepository
	mqClient    *rabbitmq.Client // optional; nil skips event publishing
}

// NewBookingService creates a new BookingService. mqClient may be nil when
// no broker is configured.
func NewBookingService(bookingRepo repositories.BookingRepository, userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		mqClient:    mqClient,
	}
}

// TargetArtist resolves the artist a request form is addressed to. Used
// both to render the form and to create the request.
func (s *BookingService) TargetArtist(artistUserID uint) (*models.User, error) {
	artist, err := s.userRepo.GetByID(artistUserID)
	if err != nil || artist.Role != models.RoleArtist {
		return nil, ErrArtistNotFound
	}
	return artist, nil
}

// CreateRequest creates a pending booking request from an organizer to an
// artist. The artist and organizer references are fixed here forever.
func (s *BookingService) CreateRequest(organizer *models.User, artistUserID uint, eventDate, venue, budget, message string) (*models.BookingRequest, error) {
	artist, err := s.TargetArtist(artistUserID)
	if err != nil {
		return nil, err
	}

	request := &models.BookingRequest{
		ArtistID:    artist.ID,
		OrganizerID: organizer.ID,
		EventDate:   eventDate,
		Venue:       venue,
		Budget:      budget,
		Message:     message,
		Status:      models.StatusPending,
	}

	if err := s.bookingRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create booking request: %w", err)
	}

	s.publishEvent("booking.requested", request)

	return request, nil
}

// Decide performs the accept/reject transition on behalf of the target
// artist. A request that does not exist and a request owned by another
// artist are deliberately indistinguishable. Re-asserting the current
// terminal status is an idempotent no-op; switching between terminal
// statuses is refused.
func (s *BookingService) Decide(actor *models.User, requestID uint, status models.BookingStatus) (*models.BookingRequest, error) {
	if !status.Terminal() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	request, err := s.bookingRepo.GetByID(requestID)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if request.ArtistID != actor.ID {
		return nil, ErrRequestNotFound
	}

	if request.Status == status {
		return request, nil
	}
	if request.Status.Terminal() {
		return nil, ErrAlreadyDecided
	}

	if err := s.bookingRepo.UpdateStatus(request.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update booking request status: %w", err)
	}
	request.Status = status

	s.publishEvent("booking."+string(status), request)

	return request, nil
}

// DashboardFor lists the requests relevant to the actor: targeting them for
// artists, created by them for organizers. Newest first, read-only.
func (s *BookingService) DashboardFor(actor *models.User) ([]models.BookingRequest, error) {
	if actor.Role == models.RoleArtist {
		return s.bookingRepo.ListByArtist(actor.ID)
	}
	return s.bookingRepo.ListByOrganizer(actor.ID)
}

// publishEvent emits a booking lifecycle event. Fire-and-forget: a publish
// failure is logged and never fails the request that triggered it.
func (s *BookingService) publishEvent(event string, request *models.BookingRequest) {
	if s.mqClient == nil {
		return
	}

	payload := map[string]interface{}{
		"request_id":   request.ID,
		"artist_id":    request.ArtistID,
		"organizer_id": request.OrganizerID,
		"status":       request.Status,
	}
	if err := s.mqClient.PublishBookingEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for request %d: %v", event, request.ID, err)
	}
}
