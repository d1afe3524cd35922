package models

import (
	"time"
)

// User holds the profile. The application currently runs single-user:
// the first row is the implicit owner and is created lazily.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `gorm:"size:30" json:"display_name"`
	Password       string    `json:"-"`
	ProfilePicture string    `json:"profile_picture"`
	UpdatedAt      time.Time `json:"updated_at"`
}
