package dto

import "time"

type CreateEventRequest struct {
	Title              string     `json:"title" binding:"required" validate:"required,max=200"`
	Description        string     `json:"description" validate:"max=8000"`
	StartDate          time.Time  `json:"start_date" binding:"required" validate:"required"`
	EndDate            *time.Time `json:"end_date"`
	Location           string     `json:"location" validate:"max=200"`
	IsVirtual          bool       `json:"is_virtual"`
	VirtualMeetingLink string     `json:"virtual_meeting_link" validate:"omitempty,url"`
	MaxAttendees       int        `json:"max_attendees" validate:"min=0"`
	IsPublished        bool       `json:"is_published"`
}
