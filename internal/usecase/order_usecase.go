package usecase

import (
	"context"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderInput defines the data required to price or place an order.
// Product IDs may repeat: every occurrence is one cart line.
type PlaceOrderInput struct {
	CustomerID uuid.UUID
	MerchantID uuid.UUID
	AddressID  uuid.UUID
	ProductIDs []uuid.UUID
}

// OrderQuote is a server-side price preview. Totals are always rebuilt
// from live product records; client-provided amounts are never trusted.
type OrderQuote struct {
	Items    []entity.OrderItem
	Subtotal decimal.Decimal
	TaxRate  decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// OrderUsecase defines the customer-facing order operations.
type OrderUsecase interface {
	// PreviewOrder prices a cart without persisting anything.
	// AddressID may be zero for a preview.
	PreviewOrder(ctx context.Context, input PlaceOrderInput) (*OrderQuote, error)

	// PlaceOrder validates merchant, products and address, rebuilds the
	// pricing, snapshots items and address, and persists the order as
	// pending within a single transaction.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns the customer's orders, most recent first.
	ListOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one of the customer's orders. Orders of other
	// customers are reported as not found.
	GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)
}
