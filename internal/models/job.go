package models

import (
	"time"

	"github.com/google/uuid"
)

type JobStatusType string

const (
	JobStatusDraft  JobStatusType = "DRAFT"
	JobStatusPublic JobStatusType = "PUBLIC"
	JobStatusPaused JobStatusType = "PAUSED"
	JobStatusClosed JobStatusType = "CLOSED"
)

// IsValidTarget reports whether s is a status a recruiter may move a
// job to. DRAFT is the creation state only; there is no enforced
// ordering between the three targets.
func (s JobStatusType) IsValidTarget() bool {
	switch s {
	case JobStatusPublic, JobStatusPaused, JobStatusClosed:
		return true
	default:
		return false
	}
}

type JobTypeType string

const (
	JobTypeFullTime   JobTypeType = "FULL_TIME"
	JobTypePartTime   JobTypeType = "PART_TIME"
	JobTypeInternship JobTypeType = "INTERNSHIP"
	JobTypeFreelance  JobTypeType = "FREELANCE"
)

type Location struct {
	Province string `json:"province"`
	District string `json:"district"`
	Ward     string `json:"ward"`
}

type SalaryRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type Job struct {
	ID               uuid.UUID     `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Location         Location      `json:"location"`
	SalaryRange      SalaryRange   `json:"salary_range"`
	JobType          JobTypeType   `json:"job_type"`
	SkillsRequired   []Skill       `json:"skills_required"`
	Responsibilities []string      `json:"responsibilities"`
	Requirements     []string      `json:"requirements"`
	Benefits         []string      `json:"benefits"`
	RecruiterID      uuid.UUID     `json:"recruiter_id"`
	CompanyID        *uuid.UUID    `json:"company_id,omitempty"`
	Status           JobStatusType `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
