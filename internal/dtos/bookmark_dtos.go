package dtos

// ----------------------
// Requests
// ----------------------

type AddBookmarkRequest struct {
	JobID string `json:"job_id" validate:"required,uuid4"`
}
