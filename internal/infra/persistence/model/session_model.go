package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel is the GORM-specific struct for the 'sessions' table.
// Each row represents one logged-in device; TokenHash stores the SHA-256
// digest of the refresh token, never the token itself.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
