package services

import (
	"strings"

	"alumnihub_backend/internal/auth"
	"alumnihub_backend/internal/email"
	"alumnihub_backend/internal/logger"
	"alumnihub_backend/internal/models"
	"alumnihub_backend/internal/repositories"
	"alumnihub_backend/internal/services/dto"
	"alumnihub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, token string) error
	ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo       repositories.UserRepository
	profileRepo    repositories.ProfileRepository
	sessionService SessionService
	emailProvider  email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	sessionService SessionService,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		sessionService: sessionService,
		emailProvider:  emailProvider,
	}
}

// Register creates a user and, for alumni, an empty profile in the same
// transaction. The plaintext password exists only on this stack frame.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	role := models.UserRole(req.Role)
	if req.Role == "" {
		role = models.UserRoleAlumni
	}
	// Self-registration never grants admin; admins are seeded or
	// promoted by an existing admin.
	if !models.ValidRole(role) || role == models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
		Role:         role,
		Status:       models.UserStatusActive,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrDuplicateEmail
			}
			return apperrors.InternalError(err)
		}

		if role == models.UserRoleAlumni {
			profile := &models.AlumniProfile{
				UserID:    user.ID,
				FirstName: req.FirstName,
				LastName:  req.LastName,
			}
			if err := s.profileRepo.Create(tx, profile); err != nil {
				return apperrors.InternalError(err)
			}
			user.Profile = profile
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendWelcomeEmail(user.Email, req.FirstName)

	return user, nil
}

// Login verifies credentials and issues a session token. Unknown email,
// wrong password and disabled account all produce the identical
// AUTH_FAILURE response so accounts cannot be enumerated or probed.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrAuthFailure
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrAuthFailure
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrAuthFailure
	}

	token, expiresAt, err := s.sessionService.Issue(db, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.NewUserResponse(user),
	}, nil
}

// Logout revokes the presented token. Idempotent: logging out twice is
// a no-op, not an error.
func (s *AuthServiceImpl) Logout(db *gorm.DB, token string) error {
	return s.sessionService.Revoke(db, token)
}

// ChangePassword requires the current password, then rotates the hash
// and revokes every existing session in one transaction. Security
// policy: a password change invalidates all devices.
func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrAuthFailure
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdatePasswordHash(tx, user.ID, hashedPassword); err != nil {
			return apperrors.InternalError(err)
		}
		return s.sessionService.RevokeAll(tx, user.ID)
	})
}

func (s *AuthServiceImpl) sendWelcomeEmail(to, firstName string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendWelcome(to, firstName); err != nil {
			logger.Warn("failed to send welcome email", "error", err.Error())
		}
	}()
}
