package models

import (
	"time"

	"github.com/google/uuid"
)

type SenderType string

const (
	SenderWorker    SenderType = "worker"
	SenderRecruiter SenderType = "recruiter"
)

// Message is one entry of a recruiting record's embedded thread.
// Append-only; ordering is insertion order.
type Message struct {
	SenderType SenderType `json:"sender_type"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
}

type RecruitingProgress string

const (
	ProgressApplied         RecruitingProgress = "APPLIED"
	ProgressDocumentReading RecruitingProgress = "DOCUMENT_READING"
	ProgressInterview       RecruitingProgress = "INTERVIEW"
	ProgressTechAssessment  RecruitingProgress = "TECH_ASSESSMENT"
	ProgressOffer           RecruitingProgress = "OFFER"
	ProgressHired           RecruitingProgress = "HIRED"
	ProgressRejected        RecruitingProgress = "REJECTED"
)

// Next returns the successor in the hiring funnel. The ladder is
// linear and total: every non-terminal state has exactly one
// successor. Terminal states return themselves with ok=false so the
// caller can re-persist the unchanged value.
func (p RecruitingProgress) Next() (RecruitingProgress, bool) {
	switch p {
	case ProgressApplied:
		return ProgressDocumentReading, true
	case ProgressDocumentReading:
		return ProgressInterview, true
	case ProgressInterview:
		return ProgressTechAssessment, true
	case ProgressTechAssessment:
		return ProgressOffer, true
	case ProgressOffer:
		return ProgressHired, true
	case ProgressHired, ProgressRejected:
		return p, false
	default:
		return p, false
	}
}

// IsTerminal reports whether no further advance is possible.
func (p RecruitingProgress) IsTerminal() bool {
	return p == ProgressHired || p == ProgressRejected
}

// Recruiting links one Worker to one Job; unique per (job, worker)
// pair, enforced by the storage layer.
type Recruiting struct {
	ID          uuid.UUID          `json:"id"`
	JobID       uuid.UUID          `json:"job_id"`
	WorkerID    uuid.UUID          `json:"worker_id"`
	Progress    RecruitingProgress `json:"progress"`
	Messages    []Message          `json:"messages,omitempty"`
	LastMessage *Message           `json:"last_message,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
