package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/tuan204-dev/ttcs-be/internal/models"
)

// ----------------------
// Requests
// ----------------------

type CreateJobRequest struct {
	Title            string             `json:"title" validate:"required,min=1,max=255"`
	Description      string             `json:"description" validate:"required"`
	Location         models.Location    `json:"location"`
	SalaryRange      models.SalaryRange `json:"salary_range" validate:"required"`
	JobType          string             `json:"job_type" validate:"required,oneof=FULL_TIME PART_TIME INTERNSHIP FREELANCE"`
	SkillsRequired   []models.Skill     `json:"skills_required" validate:"omitempty,dive"`
	Responsibilities []string           `json:"responsibilities"`
	Requirements     []string           `json:"requirements"`
	Benefits         []string           `json:"benefits"`
}

type EditJobRequest struct {
	Title            string             `json:"title" validate:"required,min=1,max=255"`
	Description      string             `json:"description" validate:"required"`
	Location         models.Location    `json:"location"`
	SalaryRange      models.SalaryRange `json:"salary_range" validate:"required"`
	JobType          string             `json:"job_type" validate:"required,oneof=FULL_TIME PART_TIME INTERNSHIP FREELANCE"`
	SkillsRequired   []models.Skill     `json:"skills_required" validate:"omitempty,dive"`
	Responsibilities []string           `json:"responsibilities"`
	Requirements     []string           `json:"requirements"`
	Benefits         []string           `json:"benefits"`
}

// ----------------------
// Responses
// ----------------------

// RecruiterSummary is the trimmed recruiter view embedded in public
// job and recruiting payloads.
type RecruiterSummary struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Avatar    string     `json:"avatar"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

// PublicJob is the worker-facing job view. The raw recruiter id is
// replaced by an embedded recruiter summary.
type PublicJob struct {
	ID               uuid.UUID            `json:"id"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Location         models.Location      `json:"location"`
	SalaryRange      models.SalaryRange   `json:"salary_range"`
	JobType          models.JobTypeType   `json:"job_type"`
	SkillsRequired   []models.Skill       `json:"skills_required"`
	Responsibilities []string             `json:"responsibilities"`
	Requirements     []string             `json:"requirements"`
	Benefits         []string             `json:"benefits"`
	Status           models.JobStatusType `json:"status"`
	Recruiter        *RecruiterSummary    `json:"recruiter"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func NewRecruiterSummary(r *models.Recruiter) *RecruiterSummary {
	if r == nil {
		return nil
	}
	return &RecruiterSummary{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Avatar:    r.Avatar,
		CompanyID: r.CompanyID,
	}
}

func NewPublicJob(job *models.Job, recruiter *models.Recruiter) *PublicJob {
	return &PublicJob{
		ID:               job.ID,
		Title:            job.Title,
		Description:      job.Description,
		Location:         job.Location,
		SalaryRange:      job.SalaryRange,
		JobType:          job.JobType,
		SkillsRequired:   job.SkillsRequired,
		Responsibilities: job.Responsibilities,
		Requirements:     job.Requirements,
		Benefits:         job.Benefits,
		Status:           job.Status,
		Recruiter:        NewRecruiterSummary(recruiter),
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
}
