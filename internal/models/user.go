package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	BaseModel
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string         `gorm:"not null" json:"-"`
	FirstName      string         `gorm:"not null" json:"first_name"`
	LastName       string         `gorm:"not null" json:"last_name"`
	UserType       pq.StringArray `gorm:"type:text[];not null" json:"user_type"`
	ProfilePicture string         `json:"profile_picture,omitempty"`
	DateOfBirth    *time.Time     `gorm:"type:date" json:"date_of_birth,omitempty"`
	Experience     string         `json:"experience,omitempty"`
	Qualifications string         `json:"qualifications,omitempty"`

	// Relations
	Locations []Location `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Pets      []Pet      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Sessions  []Session  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// HasRole is the single capability check for role membership; call
// sites never inspect UserType directly.
func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.UserType {
		if UserRole(r) == role {
			return true
		}
	}
	return false
}

// Roles returns the typed role set.
func (u *User) Roles() []UserRole {
	roles := make([]UserRole, 0, len(u.UserType))
	for _, r := range u.UserType {
		roles = append(roles, UserRole(r))
	}
	return roles
}

// Session backs cookie-based authentication. One row per login.
type Session struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
