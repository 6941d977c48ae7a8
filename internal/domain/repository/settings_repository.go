// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"appcenar/internal/domain/entity"
)

// SettingsRepository defines the operations for system-wide settings persistence.
// There is a single settings row; Get creates it with defaults when missing.
type SettingsRepository interface {
	// Get retrieves the settings row, creating it with default values on first access.
	Get(ctx context.Context) (*entity.Settings, error)

	// Update persists the settings row.
	Update(ctx context.Context, settings *entity.Settings) error
}
