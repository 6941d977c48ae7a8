// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when the email or username is already taken.
	ErrDuplicateAccount = errors.New("email or username already registered")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByLogin retrieves an account whose email or username matches the given identifier.
	FindByLogin(ctx context.Context, login string) (*entity.Account, error)

	// FindByActivationToken retrieves an account holding the given activation token.
	FindByActivationToken(ctx context.Context, token string) (*entity.Account, error)

	// FindByResetToken retrieves an account holding the given password reset token.
	FindByResetToken(ctx context.Context, token string) (*entity.Account, error)

	// FindByRole retrieves all accounts with the given role.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)

	// FindAvailableCourier retrieves one active courier currently marked as available.
	// Returns ErrAccountNotFound when no courier qualifies.
	FindAvailableCourier(ctx context.Context) (*entity.Account, error)

	// FindActiveMerchantsByBusinessType retrieves active merchants for a business type,
	// ordered alphabetically by store name. A non-empty search filters by
	// store name, case-insensitively.
	FindActiveMerchantsByBusinessType(ctx context.Context, businessTypeID uuid.UUID, search string) ([]*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// SetCourierAvailability flips the availability flag of a courier profile.
	SetCourierAvailability(ctx context.Context, courierID uuid.UUID, available bool) error

	// CountByRole returns the number of accounts per role, split by active state.
	CountByRole(ctx context.Context, role entity.Role) (active int64, inactive int64, err error)
}
