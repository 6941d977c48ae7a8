// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrBusinessTypeNotFound is returned when a business type is not found.
	ErrBusinessTypeNotFound = errors.New("business type not found")
	// ErrBusinessTypeInUse is returned when deleting a business type still referenced by merchants.
	ErrBusinessTypeInUse = errors.New("business type is referenced by merchants")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// BusinessTypeRepository defines the operations for business type persistence.
type BusinessTypeRepository interface {
	// FindByID retrieves a single business type by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessType, error)

	// FindAll retrieves every business type, ordered alphabetically by name.
	FindAll(ctx context.Context) ([]*entity.BusinessType, error)

	// Create persists a new business type.
	Create(ctx context.Context, bt *entity.BusinessType) error

	// Update modifies an existing business type.
	Update(ctx context.Context, bt *entity.BusinessType) error

	// Delete removes a business type. It returns ErrBusinessTypeInUse when
	// at least one merchant still references it.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountMerchants returns the number of merchants assigned to the business type.
	CountMerchants(ctx context.Context, id uuid.UUID) (int64, error)
}

// CategoryRepository defines the operations for product category persistence.
// Categories always belong to a single merchant.
type CategoryRepository interface {
	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByMerchant retrieves all categories owned by a merchant.
	FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. Products assigned to it are left in place
	// with their category reference cleared.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByMerchant returns the number of categories owned by a merchant.
	CountByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error)
}

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the products matching the given IDs, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindByMerchant retrieves all products owned by a merchant.
	FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearCategory detaches every product of a merchant from the given category.
	ClearCategory(ctx context.Context, merchantID, categoryID uuid.UUID) error

	// CountByMerchant returns the number of products owned by a merchant.
	CountByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error)

	// CountAll returns the total number of products in the system.
	CountAll(ctx context.Context) (int64, error)
}
