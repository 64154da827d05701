package services

import (
	"alumnihub_backend/internal/models"
	"alumnihub_backend/internal/repositories"
	"alumnihub_backend/internal/services/dto"
	"alumnihub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetOwn(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	GetByID(db *gorm.DB, profileID string) (*dto.ProfileResponse, error)
	Update(db *gorm.DB, actorID string, actorRole models.UserRole, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	AddAchievement(db *gorm.DB, actorID string, actorRole models.UserRole, req *dto.AchievementRequest) (*models.Achievement, error)
	DeleteAchievement(db *gorm.DB, actorID string, actorRole models.UserRole, achievementID string) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *ProfileServiceImpl) GetOwn(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.findByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) GetByID(db *gorm.DB, profileID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(db, profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// Update mutates a profile. Only the owner or an admin may do so; the
// full tag set is replaced along with the scalar fields, in one
// transaction.
func (s *ProfileServiceImpl) Update(db *gorm.DB, actorID string, actorRole models.UserRole, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if actorID != userID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	profile, err := s.findByUserID(db, userID)
	if err != nil {
		return nil, err
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.GraduationYear = req.GraduationYear
	profile.Major = req.Major
	profile.Industry = req.Industry
	profile.Employer = req.Employer
	profile.Location = req.Location
	profile.Bio = req.Bio
	profile.AvatarURL = req.AvatarURL
	profile.PhoneNumber = req.PhoneNumber

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.profileRepo.Update(tx, profile); err != nil {
			return apperrors.InternalError(err)
		}
		if req.Tags != nil {
			if err := s.profileRepo.ReplaceTags(tx, profile.ID, req.Tags); err != nil {
				return apperrors.InternalError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.findByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewProfileResponse(updated), nil
}

func (s *ProfileServiceImpl) AddAchievement(db *gorm.DB, actorID string, actorRole models.UserRole, req *dto.AchievementRequest) (*models.Achievement, error) {
	profile, err := s.findByUserID(db, actorID)
	if err != nil {
		return nil, err
	}

	achievement := &models.Achievement{
		ProfileID:   profile.ID,
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
	}
	if err := s.profileRepo.CreateAchievement(db, achievement); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return achievement, nil
}

func (s *ProfileServiceImpl) DeleteAchievement(db *gorm.DB, actorID string, actorRole models.UserRole, achievementID string) error {
	achievement, err := s.profileRepo.FindAchievement(db, achievementID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAchievementNotFound) {
			return apperrors.NotFound("Achievement")
		}
		return apperrors.InternalError(err)
	}

	if actorRole != models.UserRoleAdmin {
		profile, err := s.findByUserID(db, actorID)
		if err != nil {
			return err
		}
		if profile.ID != achievement.ProfileID {
			return apperrors.ErrForbidden
		}
	}

	if err := s.profileRepo.DeleteAchievement(db, achievementID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) findByUserID(db *gorm.DB, userID string) (*models.AlumniProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
