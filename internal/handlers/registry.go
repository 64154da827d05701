package handlers

import (
	"alumnihub_backend/internal/services"
	"alumnihub_backend/internal/validator"
)

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	SearchHandler  *SearchHandler
	EventHandler   *EventHandler
	JobHandler     *JobHandler
	UserHandler    *UserHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, sc.AuthService),
		ProfileHandler: NewProfileHandler(base, sc.ProfileService),
		SearchHandler:  NewSearchHandler(base, sc.SearchService),
		EventHandler:   NewEventHandler(base, sc.EventService),
		JobHandler:     NewJobHandler(base, sc.JobService),
		UserHandler:    NewUserHandler(base, sc.UserService),
	}
}
