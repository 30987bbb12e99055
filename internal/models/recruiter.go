package models

import (
	"time"

	"github.com/google/uuid"
)

type Recruiter struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	Gender       GenderType `json:"gender"`
	Location     string     `json:"location"`
	Avatar       string     `json:"avatar"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
