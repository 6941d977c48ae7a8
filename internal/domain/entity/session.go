package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a persisted login session. It stores only a SHA-256 hash of the
// raw refresh token; the session row is written and confirmed before login
// ever answers, so a follow-up request cannot race its persistence.
type Session struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
