package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/tuan204-dev/ttcs-be/internal/models"
)

// ----------------------
// Requests
// ----------------------

type SendMessageRequest struct {
	RecruitingID uuid.UUID `json:"recruiting_id" validate:"required"`
	Content      string    `json:"content" validate:"required"`
}

// ----------------------
// Responses
// ----------------------

// WorkerSummary is the trimmed worker view embedded in applicant lists
// and message threads.
type WorkerSummary struct {
	ID        uuid.UUID      `json:"id"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Avatar    string         `json:"avatar"`
	Location  string         `json:"location"`
	Education string         `json:"education"`
	Skills    []models.Skill `json:"skills"`
}

// WorkerRecruiting is one entry in a worker's application list, with
// the job and its recruiter resolved.
type WorkerRecruiting struct {
	ID          uuid.UUID                 `json:"id"`
	Progress    models.RecruitingProgress `json:"progress"`
	Job         *PublicJob                `json:"job"`
	LastMessage *models.Message           `json:"last_message"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// JobApplicant is one entry in a recruiter's applicant list for a job.
type JobApplicant struct {
	ID          uuid.UUID                 `json:"id"`
	Progress    models.RecruitingProgress `json:"progress"`
	Worker      *WorkerSummary            `json:"worker"`
	LastMessage *models.Message           `json:"last_message"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// RecruitingThread is the full conversation view for one application,
// visible to either party.
type RecruitingThread struct {
	ID        uuid.UUID                 `json:"id"`
	Progress  models.RecruitingProgress `json:"progress"`
	Job       *PublicJob                `json:"job"`
	Worker    *WorkerSummary            `json:"worker"`
	Messages  []models.Message          `json:"messages"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

func NewWorkerSummary(w *models.Worker) *WorkerSummary {
	if w == nil {
		return nil
	}
	return &WorkerSummary{
		ID:        w.ID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Avatar:    w.Avatar,
		Location:  w.Location,
		Education: w.Education,
		Skills:    w.Skills,
	}
}
