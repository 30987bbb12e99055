package models

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a worker's saved reference to a job; unique per
// (job, worker) pair, enforced by the storage layer.
type Bookmark struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	WorkerID  uuid.UUID `json:"worker_id"`
	CreatedAt time.Time `json:"created_at"`
}
