package services

import (
	"time"

	"alumnihub_backend/internal/models"
	"alumnihub_backend/internal/repositories"
	"alumnihub_backend/internal/services/dto"
	"alumnihub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type EventService interface {
	Create(db *gorm.DB, creatorID string, req *dto.CreateEventRequest) (*models.Event, error)
	Get(db *gorm.DB, eventID string, actorRole models.UserRole) (*models.Event, error)
	List(db *gorm.DB, actorRole models.UserRole, offset, limit int) (*dto.PaginatedResponse, error)
	Register(db *gorm.DB, eventID, userID string) (*models.EventRegistration, error)
	CancelRegistration(db *gorm.DB, eventID, userID string) error
}

type EventServiceImpl struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventService {
	return &EventServiceImpl{eventRepo: eventRepo}
}

func (s *EventServiceImpl) Create(db *gorm.DB, creatorID string, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:              req.Title,
		Description:        req.Description,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Location:           req.Location,
		IsVirtual:          req.IsVirtual,
		VirtualMeetingLink: req.VirtualMeetingLink,
		MaxAttendees:       req.MaxAttendees,
		CreatorID:          creatorID,
		IsPublished:        req.IsPublished,
	}
	if err := s.eventRepo.Create(db, event); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return event, nil
}

func (s *EventServiceImpl) Get(db *gorm.DB, eventID string, actorRole models.UserRole) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(db, eventID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	// Drafts are only visible to staff and admins.
	if !event.IsPublished && actorRole == models.UserRoleAlumni {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (s *EventServiceImpl) List(db *gorm.DB, actorRole models.UserRole, offset, limit int) (*dto.PaginatedResponse, error) {
	publishedOnly := actorRole == models.UserRoleAlumni

	events, total, err := s.eventRepo.List(db, publishedOnly, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PaginatedResponse{
		Data:   events,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}, nil
}

// Register signs a user up for an event. The capacity check and the
// insert run in one transaction; the unique (event, user) index catches
// the double-registration race.
func (s *EventServiceImpl) Register(db *gorm.DB, eventID, userID string) (*models.EventRegistration, error) {
	var reg *models.EventRegistration

	err := db.Transaction(func(tx *gorm.DB) error {
		event, err := s.eventRepo.FindByID(tx, eventID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrEventNotFound) {
				return apperrors.ErrEventNotFound
			}
			return apperrors.InternalError(err)
		}

		if !event.IsPublished || event.StartDate.Before(time.Now()) {
			return apperrors.ErrEventClosed
		}

		if event.MaxAttendees > 0 {
			count, err := s.eventRepo.CountActiveRegistrations(tx, eventID)
			if err != nil {
				return apperrors.InternalError(err)
			}
			if count >= int64(event.MaxAttendees) {
				return apperrors.ErrEventFull
			}
		}

		// A cancelled registration is re-activated rather than
		// duplicated, so the unique index holds.
		existing, err := s.eventRepo.FindRegistration(tx, eventID, userID)
		if err == nil {
			if existing.Status == models.RegistrationStatusRegistered {
				return apperrors.ErrAlreadyRegistered
			}
			if err := s.eventRepo.UpdateRegistrationStatus(tx, existing.ID, models.RegistrationStatusRegistered); err != nil {
				return apperrors.InternalError(err)
			}
			existing.Status = models.RegistrationStatusRegistered
			reg = existing
			return nil
		}
		if !apperrors.Is(err, repositories.ErrRegistrationNotFound) {
			return apperrors.InternalError(err)
		}

		reg = &models.EventRegistration{
			EventID: eventID,
			UserID:  userID,
			Status:  models.RegistrationStatusRegistered,
		}
		if err := s.eventRepo.CreateRegistration(tx, reg); err != nil {
			if apperrors.Is(err, repositories.ErrDuplicateRegistration) {
				return apperrors.ErrAlreadyRegistered
			}
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *EventServiceImpl) CancelRegistration(db *gorm.DB, eventID, userID string) error {
	reg, err := s.eventRepo.FindRegistration(db, eventID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRegistrationNotFound) {
			return apperrors.NotFound("Registration")
		}
		return apperrors.InternalError(err)
	}

	if reg.Status == models.RegistrationStatusCancelled {
		return nil
	}
	if err := s.eventRepo.UpdateRegistrationStatus(db, reg.ID, models.RegistrationStatusCancelled); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
