package services

import (
	"time"

	"alumnihub_backend/internal/email"
	"alumnihub_backend/internal/repositories"
)

// ServiceContainer holds every service the application exposes.
type ServiceContainer struct {
	AuthService    AuthService
	SessionService SessionService
	ProfileService ProfileService
	SearchService  SearchService
	EventService   EventService
	JobService     JobService
	UserService    UserService
	EmailProvider  email.Provider
}

func NewServiceContainer(sessionTTL time.Duration, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	sessionRepo := repositories.NewSessionRepository()
	profileRepo := repositories.NewProfileRepository()
	eventRepo := repositories.NewEventRepository()
	jobRepo := repositories.NewJobRepository()

	sessionService := NewSessionService(sessionRepo, userRepo, sessionTTL)

	return &ServiceContainer{
		AuthService:    NewAuthService(userRepo, profileRepo, sessionService, emailProvider),
		SessionService: sessionService,
		ProfileService: NewProfileService(profileRepo, userRepo),
		SearchService:  NewSearchService(profileRepo),
		EventService:   NewEventService(eventRepo),
		JobService:     NewJobService(jobRepo),
		UserService:    NewUserService(userRepo, sessionRepo),
		EmailProvider:  emailProvider,
	}
}
