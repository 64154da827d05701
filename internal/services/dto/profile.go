package dto

import "alumnihub_backend/internal/models"

type UpdateProfileRequest struct {
	FirstName      string   `json:"first_name" validate:"max=100"`
	LastName       string   `json:"last_name" validate:"max=100"`
	GraduationYear int      `json:"graduation_year" validate:"omitempty,min=1900,max=2100"`
	Major          string   `json:"major" validate:"max=120"`
	Industry       string   `json:"industry" validate:"max=120"`
	Employer       string   `json:"employer" validate:"max=120"`
	Location       string   `json:"location" validate:"max=120"`
	Bio            string   `json:"bio" validate:"max=4000"`
	AvatarURL      string   `json:"avatar_url" validate:"omitempty,url"`
	PhoneNumber    string   `json:"phone_number" validate:"max=40"`
	Tags           []string `json:"tags" validate:"max=20,dive,min=1,max=60"`
}

type AchievementRequest struct {
	Title       string `json:"title" binding:"required" validate:"required,max=200"`
	Description string `json:"description" validate:"max=4000"`
	Year        int    `json:"year" validate:"omitempty,min=1900,max=2100"`
}

type ProfileResponse struct {
	ID             string               `json:"id"`
	UserID         string               `json:"user_id"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	GraduationYear int                  `json:"graduation_year"`
	Major          string               `json:"major"`
	Industry       string               `json:"industry"`
	Employer       string               `json:"employer"`
	Location       string               `json:"location"`
	Bio            string               `json:"bio"`
	AvatarURL      string               `json:"avatar_url"`
	PhoneNumber    string               `json:"phone_number"`
	IsVerified     bool                 `json:"is_verified"`
	Tags           []string             `json:"tags"`
	Achievements   []models.Achievement `json:"achievements,omitempty"`
}

// NewProfileResponse flattens the tag relation into plain strings.
func NewProfileResponse(p *models.AlumniProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		GraduationYear: p.GraduationYear,
		Major:          p.Major,
		Industry:       p.Industry,
		Employer:       p.Employer,
		Location:       p.Location,
		Bio:            p.Bio,
		AvatarURL:      p.AvatarURL,
		PhoneNumber:    p.PhoneNumber,
		IsVerified:     p.IsVerified,
		Tags:           p.TagStrings(),
		Achievements:   p.Achievements,
	}
}
