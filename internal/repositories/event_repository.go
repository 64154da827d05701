package repositories

import (
	"errors"

	"alumnihub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrDuplicateRegistration = errors.New("already registered for event")
)

type EventRepository interface {
	Create(db *gorm.DB, event *models.Event) error
	FindByID(db *gorm.DB, id string) (*models.Event, error)
	List(db *gorm.DB, publishedOnly bool, limit, offset int) ([]models.Event, int64, error)

	CreateRegistration(db *gorm.DB, reg *models.EventRegistration) error
	FindRegistration(db *gorm.DB, eventID, userID string) (*models.EventRegistration, error)
	UpdateRegistrationStatus(db *gorm.DB, id string, status models.RegistrationStatus) error
	CountActiveRegistrations(db *gorm.DB, eventID string) (int64, error)
}

type eventRepository struct{}

func NewEventRepository() EventRepository {
	return &eventRepository{}
}

func (r *eventRepository) Create(db *gorm.DB, event *models.Event) error {
	return db.Create(event).Error
}

func (r *eventRepository) FindByID(db *gorm.DB, id string) (*models.Event, error) {
	var event models.Event
	if err := db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(db *gorm.DB, publishedOnly bool, limit, offset int) ([]models.Event, int64, error) {
	query := db.Model(&models.Event{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := query.Order("start_date ASC, id ASC").
		Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

func (r *eventRepository) CreateRegistration(db *gorm.DB, reg *models.EventRegistration) error {
	if err := db.Create(reg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func (r *eventRepository) FindRegistration(db *gorm.DB, eventID, userID string) (*models.EventRegistration, error) {
	var reg models.EventRegistration
	err := db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *eventRepository) UpdateRegistrationStatus(db *gorm.DB, id string, status models.RegistrationStatus) error {
	result := db.Model(&models.EventRegistration{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

func (r *eventRepository) CountActiveRegistrations(db *gorm.DB, eventID string) (int64, error) {
	var count int64
	err := db.Model(&models.EventRegistration{}).
		Where("event_id = ? AND status = ?", eventID, models.RegistrationStatusRegistered).
		Count(&count).Error
	return count, err
}
