package models

import "time"

type JobPosting struct {
	BaseModel
	Title        string     `gorm:"size:200;not null" json:"title"`
	Company      string     `gorm:"size:200;not null" json:"company"`
	Location     string     `gorm:"size:200" json:"location"`
	JobType      string     `gorm:"size:60" json:"job_type"`
	Description  string     `gorm:"type:text" json:"description"`
	Requirements string     `gorm:"type:text" json:"requirements,omitempty"`
	SalaryRange  string     `gorm:"size:100" json:"salary_range,omitempty"`
	PostedBy     string     `gorm:"not null;index" json:"posted_by"`
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`

	Applications []JobApplication `gorm:"foreignKey:JobID" json:"-"`
}

// Open reports whether the posting accepts applications at the given instant.
func (j *JobPosting) Open(now time.Time) bool {
	if !j.IsActive {
		return false
	}
	if j.ExpiresAt != nil && now.After(*j.ExpiresAt) {
		return false
	}
	return true
}

type JobApplication struct {
	BaseModel
	JobID       string            `gorm:"not null;index:idx_job_applicant,unique" json:"job_id"`
	ApplicantID string            `gorm:"not null;index:idx_job_applicant,unique" json:"applicant_id"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverNote   string            `gorm:"type:text" json:"cover_note,omitempty"`
}
