package services

import (
	"alumnihub_backend/internal/models"
	"alumnihub_backend/internal/repositories"
	"alumnihub_backend/internal/services/dto"
	"alumnihub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService covers the admin-facing account operations.
type UserService interface {
	Get(db *gorm.DB, userID string) (*dto.UserResponse, error)
	List(db *gorm.DB, offset, limit int) (*dto.PaginatedResponse, error)
	SetStatus(db *gorm.DB, userID string, status models.UserStatus) error
	SetRole(db *gorm.DB, userID string, role models.UserRole) error
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
}

func NewUserService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo, sessionRepo: sessionRepo}
}

func (s *UserServiceImpl) Get(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) List(db *gorm.DB, offset, limit int) (*dto.PaginatedResponse, error) {
	total, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	users, err := s.userRepo.FindAll(db, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}

	return &dto.PaginatedResponse{
		Data:   responses,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}, nil
}

// SetStatus flips an account between active and disabled. Disabling also
// revokes every live session so the account loses access immediately.
func (s *UserServiceImpl) SetStatus(db *gorm.DB, userID string, status models.UserStatus) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdateStatus(tx, userID, status); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.InternalError(err)
		}
		if status == models.UserStatusDisabled {
			if err := s.sessionRepo.RevokeAllForUser(tx, userID); err != nil {
				return apperrors.InternalError(err)
			}
		}
		return nil
	})
}

func (s *UserServiceImpl) SetRole(db *gorm.DB, userID string, role models.UserRole) error {
	if !models.ValidRole(role) {
		return apperrors.ErrInvalidUserRole
	}
	if err := s.userRepo.UpdateRole(db, userID, role); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
