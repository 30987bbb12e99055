package dtos

import (
	"time"

	"github.com/tuan204-dev/ttcs-be/internal/models"
)

// ----------------------
// Verification
// ----------------------

type SendVerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ----------------------
// Registration
// ----------------------

type RegisterWorkerRequest struct {
	Token             string         `json:"token" validate:"required"`
	Password          string         `json:"password" validate:"required,min=8,max=72"`
	FirstName         string         `json:"first_name" validate:"required,min=1,max=100"`
	LastName          string         `json:"last_name" validate:"required,min=1,max=100"`
	Phone             string         `json:"phone" validate:"omitempty,max=20"`
	Gender            string         `json:"gender" validate:"omitempty,oneof=UNKNOWN MALE FEMALE"`
	Location          string         `json:"location" validate:"omitempty,max=255"`
	Avatar            string         `json:"avatar" validate:"omitempty,url"`
	Education         string         `json:"education"`
	Skills            []models.Skill `json:"skills" validate:"omitempty,dive"`
	Description       string         `json:"description"`
	CareerOrientation string         `json:"career_orientation"`
}

type RegisterRecruiterRequest struct {
	Token     string `json:"token" validate:"required"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Gender    string `json:"gender" validate:"omitempty,oneof=UNKNOWN MALE FEMALE"`
	Location  string `json:"location" validate:"omitempty,max=255"`
	Avatar    string `json:"avatar" validate:"omitempty,url"`
}

// ----------------------
// Profile
// ----------------------

// UpdateWorkerRequest carries a partial profile update; nil fields are
// left untouched.
type UpdateWorkerRequest struct {
	FirstName         *string         `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName          *string         `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone             *string         `json:"phone" validate:"omitempty,max=20"`
	Gender            *string         `json:"gender" validate:"omitempty,oneof=UNKNOWN MALE FEMALE"`
	Location          *string         `json:"location" validate:"omitempty,max=255"`
	Avatar            *string         `json:"avatar" validate:"omitempty,url"`
	Education         *string         `json:"education"`
	Skills            *[]models.Skill `json:"skills" validate:"omitempty,dive"`
	IsOpenToOffer     *bool           `json:"is_open_to_offer"`
	DateOfBirth       *time.Time      `json:"date_of_birth"`
	Description       *string         `json:"description"`
	CareerOrientation *string         `json:"career_orientation"`
}

// ----------------------
// Login
// ----------------------

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginWorkerResponse struct {
	Worker       *models.Worker `json:"worker"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
}

type LoginRecruiterResponse struct {
	Recruiter    *models.Recruiter `json:"recruiter"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
}

// ----------------------
// Refresh Token / Logout
// ----------------------

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required,len=64"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required,len=64"`
}
