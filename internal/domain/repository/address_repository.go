// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the operations for customer address persistence.
type AddressRepository interface {
	// FindByID retrieves a single address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByCustomer retrieves all addresses owned by a customer.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error)

	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// Update modifies an existing address.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address.
	Delete(ctx context.Context, id uuid.UUID) error
}
