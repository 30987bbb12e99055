package models

import (
	"time"

	"github.com/google/uuid"
)

// VerifyToken proves control of an email address during registration.
// One active token per (email, role); issuing a new one overwrites the
// previous row.
type VerifyToken struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      RoleType  `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (vt *VerifyToken) IsExpired() bool {
	return time.Now().After(vt.ExpiresAt)
}
