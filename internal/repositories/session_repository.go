package repositories

import (
	"errors"
	"time"

	"alumnihub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrSessionNotFound is returned when a token has no session row.
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRepository stores opaque session tokens. Expiry is passive:
// nothing here runs on a timer, expired rows are simply never accepted.
type SessionRepository interface {
	Create(db *gorm.DB, session *models.Session) error
	FindByToken(db *gorm.DB, token string) (*models.Session, error)
	Revoke(db *gorm.DB, token string) error
	RevokeAllForUser(db *gorm.DB, userID string) error
	DeleteExpired(db *gorm.DB, before time.Time) (int64, error)
}

type sessionRepository struct{}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

func (r *sessionRepository) FindByToken(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session
	if err := db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Revoke is idempotent: revoking an already-revoked or unknown token is
// not an error.
func (r *sessionRepository) Revoke(db *gorm.DB, token string) error {
	return db.Model(&models.Session{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}

// RevokeAllForUser invalidates every session a user holds, on all
// devices. Used on password change and admin disable.
func (r *sessionRepository) RevokeAllForUser(db *gorm.DB, userID string) error {
	return db.Model(&models.Session{}).
		Where("user_id = ?", userID).
		Update("revoked", true).Error
}

func (r *sessionRepository) DeleteExpired(db *gorm.DB, before time.Time) (int64, error) {
	result := db.Where("expires_at < ?", before).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
