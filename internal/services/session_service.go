package services

import (
	"time"

	"alumnihub_backend/internal/auth"
	"alumnihub_backend/internal/models"
	"alumnihub_backend/internal/repositories"
	"alumnihub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// SessionInfo is what a validated token resolves to.
type SessionInfo struct {
	UserID    string
	Role      models.UserRole
	ExpiresAt time.Time
}

// SessionService issues and validates opaque session tokens.
type SessionService interface {
	// Issue creates a session for the user and returns the token.
	Issue(db *gorm.DB, userID string) (string, time.Time, error)

	// Validate resolves a token to its identity. Unknown, expired and
	// revoked tokens all fail the same way.
	Validate(db *gorm.DB, token string) (*SessionInfo, error)

	// Revoke invalidates one token; idempotent.
	Revoke(db *gorm.DB, token string) error

	// RevokeAll invalidates every session the user holds.
	RevokeAll(db *gorm.DB, userID string) error
}

type sessionServiceImpl struct {
	sessionRepo repositories.SessionRepository
	userRepo    repositories.UserRepository
	ttl         time.Duration
	now         func() time.Time
}

func NewSessionService(
	sessionRepo repositories.SessionRepository,
	userRepo repositories.UserRepository,
	ttl time.Duration,
) SessionService {
	return &sessionServiceImpl{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		ttl:         ttl,
		now:         time.Now,
	}
}

func (s *sessionServiceImpl) Issue(db *gorm.DB, userID string) (string, time.Time, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", time.Time{}, apperrors.InternalError(err)
	}

	now := s.now()
	session := &models.Session{
		UserID:    userID,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessionRepo.Create(db, session); err != nil {
		return "", time.Time{}, apperrors.InternalError(err)
	}

	return token, session.ExpiresAt, nil
}

func (s *sessionServiceImpl) Validate(db *gorm.DB, token string) (*SessionInfo, error) {
	session, err := s.sessionRepo.FindByToken(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	// Expiry is checked at read time; there is no sweeper and no
	// sliding window, so a token dies exactly at its recorded expiry.
	if !session.Active(s.now()) {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, session.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	// Disabling an account cuts off its live sessions on next use.
	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrInvalidToken
	}

	return &SessionInfo{
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *sessionServiceImpl) Revoke(db *gorm.DB, token string) error {
	if err := s.sessionRepo.Revoke(db, token); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *sessionServiceImpl) RevokeAll(db *gorm.DB, userID string) error {
	if err := s.sessionRepo.RevokeAllForUser(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
