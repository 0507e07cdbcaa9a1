package models

import "time"

// Role classifies what a user is allowed to do. It is fixed at
// registration and never changes afterwards.
type Role string

const (
	RoleArtist    Role = "artist"
	RoleOrganizer Role = "organizer"
)

// Valid reports whether r is one of the two supported roles.
func (r Role) Valid() bool {
	return r == RoleArtist || r == RoleOrganizer
}

// User represents an account on the platform.
// IsArtist and IsOrganizer exist for templates, which cannot compare a
// Role against an untyped string.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(120)"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"` // stored lowercase
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`                 // No json tag value for security
	Role         Role      `json:"role" gorm:"type:varchar(20)"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsArtist reports whether the user registered as an artist.
func (u *User) IsArtist() bool { return u.Role == RoleArtist }

// IsOrganizer reports whether the user registered as an organizer.
func (u *User) IsOrganizer() bool { return u.Role == RoleOrganizer }
