package repositories

import (
	"errors"

	"alumnihub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound          = errors.New("job posting not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("already applied to job")
)

type JobRepository interface {
	Create(db *gorm.DB, job *models.JobPosting) error
	FindByID(db *gorm.DB, id string) (*models.JobPosting, error)
	List(db *gorm.DB, activeOnly bool, limit, offset int) ([]models.JobPosting, int64, error)

	CreateApplication(db *gorm.DB, application *models.JobApplication) error
	FindApplication(db *gorm.DB, jobID, applicantID string) (*models.JobApplication, error)
	FindApplicationByID(db *gorm.DB, id string) (*models.JobApplication, error)
	ListApplications(db *gorm.DB, jobID string) ([]models.JobApplication, error)
	UpdateApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.JobPosting) error {
	return db.Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(db *gorm.DB, activeOnly bool, limit, offset int) ([]models.JobPosting, int64, error) {
	query := db.Model(&models.JobPosting{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.JobPosting
	err := query.Order("created_at DESC, id ASC").
		Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *jobRepository) CreateApplication(db *gorm.DB, application *models.JobApplication) error {
	if err := db.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *jobRepository) FindApplication(db *gorm.DB, jobID, applicantID string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := db.Where("job_id = ? AND applicant_id = ?", jobID, applicantID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *jobRepository) FindApplicationByID(db *gorm.DB, id string) (*models.JobApplication, error) {
	var application models.JobApplication
	if err := db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *jobRepository) ListApplications(db *gorm.DB, jobID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Where("job_id = ?", jobID).
		Order("created_at ASC, id ASC").Find(&applications).Error
	return applications, err
}

func (r *jobRepository) UpdateApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.JobApplication{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
