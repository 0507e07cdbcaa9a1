package models

import "time"

// BookingStatus is the lifecycle state of a booking request.
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusAccepted BookingStatus = "accepted"
	StatusRejected BookingStatus = "rejected"
)

// Terminal reports whether no further transition is exposed from s.
func (s BookingStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// BookingRequest is one organizer's ask to one artist for one event.
// Both references are fixed at creation; only Status ever changes, and
// only by the hand of the target artist.
type BookingRequest struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	ArtistID    uint          `json:"artist_id" gorm:"index"`    // artist user id
	OrganizerID uint          `json:"organizer_id" gorm:"index"` // organizer user id
	EventDate   string        `json:"event_date" gorm:"type:varchar(40)"` // free text, not parsed
	Venue       string        `json:"venue" gorm:"type:varchar(200)"`
	Budget      string        `json:"budget" gorm:"type:varchar(80)"`
	Message     string        `json:"message" gorm:"type:text"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt   time.Time     `json:"created_at"`

	Artist    User `json:"-" gorm:"foreignKey:ArtistID"`
	Organizer User `json:"-" gorm:"foreignKey:OrganizerID"`
}
