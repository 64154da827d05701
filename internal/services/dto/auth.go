package dto

import (
	"time"

	"alumnihub_backend/internal/models"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required" validate:"required,email"`
	Password  string `json:"password" binding:"required" validate:"required"`
	Role      string `json:"role" validate:"omitempty,is-user-role"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserResponse `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required" validate:"required"`
	NewPassword     string `json:"new_password" binding:"required" validate:"required"`
}

type UserResponse struct {
	ID      string                `json:"id"`
	Email   string                `json:"email"`
	Role    models.UserRole       `json:"role"`
	Status  models.UserStatus     `json:"status"`
	Profile *models.AlumniProfile `json:"profile,omitempty"`
}

// NewUserResponse strips credentials from a user record.
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Status:  user.Status,
		Profile: user.Profile,
	}
}
