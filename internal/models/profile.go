package models

// ArtistProfile holds the public booking details of an artist. Exactly one
// exists per artist user; it is created blank at registration.
type ArtistProfile struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"user_id" gorm:"uniqueIndex"`
	Category     string `json:"category" gorm:"type:varchar(80)"` // Singer, DJ, Dancer...
	Location     string `json:"location" gorm:"type:varchar(120)"`
	Bio          string `json:"bio" gorm:"type:text"`
	DemoLinks    string `json:"demo_links" gorm:"type:text"` // newline separated links, stored raw
	Charges      string `json:"charges" gorm:"type:varchar(80)"`
	ProfileImage string `json:"profile_image" gorm:"type:varchar(200)"` // filename only, not validated

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// OrganizerProfile is the organizer-side counterpart, created blank at
// registration.
type OrganizerProfile struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"user_id" gorm:"uniqueIndex"`
	Organization string `json:"organization" gorm:"type:varchar(150)"`
}
