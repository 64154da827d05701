package database

import (
	"alumnihub_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model. The unique
// indexes it creates are load-bearing: duplicate emails, double event
// registrations and double job applications are all resolved by them.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.AlumniProfile{},
		&models.ProfileTag{},
		&models.Achievement{},
		&models.Event{},
		&models.EventRegistration{},
		&models.JobPosting{},
		&models.JobApplication{},
	)
}
