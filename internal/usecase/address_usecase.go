package usecase

import (
	"context"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput defines the data to create or update a delivery address.
type AddressInput struct {
	Label       string
	Description string
}

// AddressUsecase defines the customer address book operations.
// Every operation is scoped to the session-derived customer.
type AddressUsecase interface {
	// ListAddresses returns the customer's addresses.
	ListAddresses(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error)

	// GetAddress returns one of the customer's addresses.
	GetAddress(ctx context.Context, customerID, addressID uuid.UUID) (*entity.Address, error)

	// CreateAddress adds an address to the customer's address book.
	CreateAddress(ctx context.Context, customerID uuid.UUID, input AddressInput) (*entity.Address, error)

	// UpdateAddress modifies one of the customer's addresses. Existing order
	// snapshots keep the values copied at order time.
	UpdateAddress(ctx context.Context, customerID, addressID uuid.UUID, input AddressInput) (*entity.Address, error)

	// DeleteAddress removes one of the customer's addresses.
	DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error
}
