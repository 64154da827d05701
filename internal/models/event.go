package models

import "time"

type Event struct {
	BaseModel
	Title              string     `gorm:"size:200;not null" json:"title"`
	Description        string     `gorm:"type:text" json:"description"`
	StartDate          time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	Location           string     `gorm:"size:200" json:"location"`
	IsVirtual          bool       `gorm:"default:false" json:"is_virtual"`
	VirtualMeetingLink string     `json:"virtual_meeting_link,omitempty"`
	// MaxAttendees 0 means unlimited.
	MaxAttendees int    `json:"max_attendees"`
	CreatorID    string `gorm:"not null;index" json:"creator_id"`
	IsPublished  bool   `gorm:"default:false;index" json:"is_published"`

	Registrations []EventRegistration `gorm:"foreignKey:EventID" json:"-"`
}

type EventRegistration struct {
	BaseModel
	EventID string             `gorm:"not null;index:idx_event_user,unique" json:"event_id"`
	UserID  string             `gorm:"not null;index:idx_event_user,unique" json:"user_id"`
	Status  RegistrationStatus `gorm:"type:varchar(20);default:'registered'" json:"status"`
}
