// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session has expired.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the operations for login session persistence.
// Sessions back refresh tokens and support remote logout.
type SessionRepository interface {
	// Create persists a new session, representing an authenticated login.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by the hash of its refresh token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindByAccount retrieves all sessions of an account.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error)

	// DeleteByTokenHash removes a session by its token hash, ending that login.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByAccount removes every session of an account.
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpired removes all expired sessions. Called periodically for cleanup.
	DeleteExpired(ctx context.Context) error
}
