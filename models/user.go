package models

import "time"

// User is a staff account. Only admins can sign in to the dashboard; the
// IsAdmin flag is the entire authorization model. Password always holds a
// bcrypt hash; call sites hash before writing.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	IsAdmin   bool      `gorm:"default:false" json:"isAdmin"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
