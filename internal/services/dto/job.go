package dto

import "time"

type CreateJobRequest struct {
	Title        string     `json:"title" binding:"required" validate:"required,max=200"`
	Company      string     `json:"company" binding:"required" validate:"required,max=200"`
	Location     string     `json:"location" validate:"max=200"`
	JobType      string     `json:"job_type" validate:"max=60"`
	Description  string     `json:"description" validate:"max=8000"`
	Requirements string     `json:"requirements" validate:"max=8000"`
	SalaryRange  string     `json:"salary_range" validate:"max=100"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

type ApplyJobRequest struct {
	CoverNote string `json:"cover_note" validate:"max=4000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,is-application-status"`
}
