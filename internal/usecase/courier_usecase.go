package usecase

import (
	"context"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// CourierUsecase defines the courier-facing delivery operations.
type CourierUsecase interface {
	// ListOrders returns the orders assigned to the courier, most recent first.
	ListOrders(ctx context.Context, courierID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one of the courier's assigned orders. Orders assigned
	// to other couriers are reported as not found.
	GetOrder(ctx context.Context, courierID, orderID uuid.UUID) (*entity.Order, error)

	// CompleteDelivery marks an in-progress order as completed and makes the
	// courier available again, in one transaction.
	CompleteDelivery(ctx context.Context, courierID, orderID uuid.UUID) (*entity.Order, error)
}
