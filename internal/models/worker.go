package models

import (
	"time"

	"github.com/google/uuid"
)

type GenderType string

const (
	GenderUnknown GenderType = "UNKNOWN"
	GenderMale    GenderType = "MALE"
	GenderFemale  GenderType = "FEMALE"
)

type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type Worker struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Phone             string     `json:"phone"`
	Gender            GenderType `json:"gender"`
	Location          string     `json:"location"`
	Avatar            string     `json:"avatar"`
	Education         string     `json:"education"`
	Skills            []Skill    `json:"skills"`
	IsOpenToOffer     bool       `json:"is_open_to_offer"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Description       string     `json:"description"`
	CareerOrientation string     `json:"career_orientation"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
