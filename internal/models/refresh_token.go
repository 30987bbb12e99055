package models

import (
	"time"

	"github.com/google/uuid"
)

type RoleType string

const (
	RoleWorker    RoleType = "worker"
	RoleRecruiter RoleType = "recruiter"
)

// RefreshToken is a long-lived opaque credential exchanged for a new
// access token. Token is stored as a hash in the DB.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      RoleType  `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}
