package usecase

import (
	"context"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CategoryInput defines the data to create or update a product category.
type CategoryInput struct {
	Name        string
	Description string
}

// ProductInput defines the data to create or update a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	CategoryID  *uuid.UUID
}

// MerchantUsecase defines the merchant-facing operations: incoming orders,
// courier assignment, and catalog management scoped to the owning merchant.
type MerchantUsecase interface {
	// ListOrders returns the merchant's received orders, most recent first.
	ListOrders(ctx context.Context, merchantID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one of the merchant's orders. Orders of other
	// merchants are reported as not found.
	GetOrder(ctx context.Context, merchantID, orderID uuid.UUID) (*entity.Order, error)

	// AssignCourier picks an available active courier for a pending order,
	// marks the order in progress and the courier unavailable, all in one
	// transaction. With no courier available the order is left untouched.
	AssignCourier(ctx context.Context, merchantID, orderID uuid.UUID) (*entity.Order, error)

	// ListCategories returns the merchant's categories.
	ListCategories(ctx context.Context, merchantID uuid.UUID) ([]*entity.Category, error)

	// CreateCategory adds a category to the merchant's catalog.
	CreateCategory(ctx context.Context, merchantID uuid.UUID, input CategoryInput) (*entity.Category, error)

	// UpdateCategory modifies one of the merchant's categories.
	UpdateCategory(ctx context.Context, merchantID, categoryID uuid.UUID, input CategoryInput) (*entity.Category, error)

	// DeleteCategory removes one of the merchant's categories. Products in
	// the category are kept and left uncategorized.
	DeleteCategory(ctx context.Context, merchantID, categoryID uuid.UUID) error

	// ListProducts returns the merchant's products.
	ListProducts(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error)

	// CreateProduct adds a product to the merchant's catalog.
	CreateProduct(ctx context.Context, merchantID uuid.UUID, input ProductInput) (*entity.Product, error)

	// UpdateProduct modifies one of the merchant's products.
	UpdateProduct(ctx context.Context, merchantID, productID uuid.UUID, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes one of the merchant's products. Snapshots in
	// existing orders are unaffected.
	DeleteProduct(ctx context.Context, merchantID, productID uuid.UUID) error
}
