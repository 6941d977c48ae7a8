// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when a favorite mark is not found.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the operations for customer favorite persistence.
// A favorite is a (customer, merchant) pair; creating an existing pair is a no-op.
type FavoriteRepository interface {
	// FindByCustomer retrieves all favorites of a customer.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Favorite, error)

	// Exists reports whether the customer has marked the merchant as favorite.
	Exists(ctx context.Context, customerID, merchantID uuid.UUID) (bool, error)

	// Create persists a favorite mark. Marking an already-favorite merchant
	// must not fail or create duplicates.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes a favorite mark.
	Delete(ctx context.Context, customerID, merchantID uuid.UUID) error
}
