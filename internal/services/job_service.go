package services

import (
	"time"

	"alumnihub_backend/internal/models"
	"alumnihub_backend/internal/repositories"
	"alumnihub_backend/internal/services/dto"
	"alumnihub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	Create(db *gorm.DB, posterID string, req *dto.CreateJobRequest) (*models.JobPosting, error)
	Get(db *gorm.DB, jobID string) (*models.JobPosting, error)
	List(db *gorm.DB, actorRole models.UserRole, offset, limit int) (*dto.PaginatedResponse, error)
	Apply(db *gorm.DB, jobID, applicantID string, req *dto.ApplyJobRequest) (*models.JobApplication, error)
	ListApplications(db *gorm.DB, jobID, actorID string, actorRole models.UserRole) ([]models.JobApplication, error)
	UpdateApplicationStatus(db *gorm.DB, jobID, applicationID, actorID string, actorRole models.UserRole, status models.ApplicationStatus) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
	now     func() time.Time
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, now: time.Now}
}

func (s *JobServiceImpl) Create(db *gorm.DB, posterID string, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	job := &models.JobPosting{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		JobType:      req.JobType,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		PostedBy:     posterID,
		IsActive:     true,
		ExpiresAt:    req.ExpiresAt,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Get(db *gorm.DB, jobID string) (*models.JobPosting, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) List(db *gorm.DB, actorRole models.UserRole, offset, limit int) (*dto.PaginatedResponse, error) {
	activeOnly := actorRole == models.UserRoleAlumni

	jobs, total, err := s.jobRepo.List(db, activeOnly, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PaginatedResponse{
		Data:   jobs,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}, nil
}

func (s *JobServiceImpl) Apply(db *gorm.DB, jobID, applicantID string, req *dto.ApplyJobRequest) (*models.JobApplication, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !job.Open(s.now()) {
		return nil, apperrors.ErrJobClosed
	}

	application := &models.JobApplication{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusPending,
		CoverNote:   req.CoverNote,
	}
	if err := s.jobRepo.CreateApplication(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

// ListApplications is restricted to the posting's author and admins.
func (s *JobServiceImpl) ListApplications(db *gorm.DB, jobID, actorID string, actorRole models.UserRole) ([]models.JobApplication, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.PostedBy != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	applications, err := s.jobRepo.ListApplications(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *JobServiceImpl) UpdateApplicationStatus(db *gorm.DB, jobID, applicationID, actorID string, actorRole models.UserRole, status models.ApplicationStatus) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if job.PostedBy != actorID && actorRole != models.UserRoleAdmin {
		return apperrors.ErrForbidden
	}

	application, err := s.jobRepo.FindApplicationByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.NotFound("Application")
		}
		return apperrors.InternalError(err)
	}
	if application.JobID != jobID {
		return apperrors.NotFound("Application")
	}

	if err := s.jobRepo.UpdateApplicationStatus(db, applicationID, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.NotFound("Application")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
