package models

import "time"

type User struct {
	BaseModel
	// Email is stored lowercased; the unique index plus lowercasing on
	// write gives case-insensitive uniqueness.
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	Profile  *AlumniProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Sessions []Session      `gorm:"foreignKey:UserID" json:"-"`
}

// Session is a server-side record for an opaque bearer token. The token
// carries no claims; everything is looked up here.
type Session struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	IssuedAt  time.Time `gorm:"not null" json:"issued_at"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"not null;default:false" json:"revoked"`
}

// Active reports whether the session is usable at the given instant.
func (s *Session) Active(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}
