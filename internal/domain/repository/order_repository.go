// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
// Orders are persisted together with their item snapshots.
type OrderRepository interface {
	// FindByID retrieves a single order with its items by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByCustomer retrieves all orders placed by a customer, most recent first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// FindByMerchant retrieves all orders received by a merchant, most recent first.
	FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Order, error)

	// FindByCourier retrieves all orders assigned to a courier, most recent first.
	FindByCourier(ctx context.Context, courierID uuid.UUID) ([]*entity.Order, error)

	// Create persists a new order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order header. Items are immutable after creation.
	Update(ctx context.Context, order *entity.Order) error

	// CountAll returns the total number of orders in the system.
	CountAll(ctx context.Context) (int64, error)

	// CountSince returns the number of orders created at or after the given time.
	CountSince(ctx context.Context, since time.Time) (int64, error)

	// CountByMerchant returns the number of orders received by a merchant.
	CountByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error)

	// CountByCustomer returns the number of orders placed by a customer.
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// CountByCourier returns the number of orders assigned to a courier.
	CountByCourier(ctx context.Context, courierID uuid.UUID) (int64, error)
}
