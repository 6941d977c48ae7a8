package usecase

import (
	"context"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// MerchantSummary is a storefront listing entry: one active merchant
// plus the caller's favorite flag.
type MerchantSummary struct {
	ID         uuid.UUID
	StoreName  string
	LogoURL    string
	OpensAt    string
	ClosesAt   string
	IsFavorite bool
}

// CategoryProducts groups a merchant's products under one category.
// Products without a category are grouped under a nil Category.
type CategoryProducts struct {
	Category *entity.Category
	Products []*entity.Product
}

// MerchantCatalog is the full storefront view of one merchant.
type MerchantCatalog struct {
	Merchant   *entity.Account
	Categories []CategoryProducts
}

// CatalogUsecase defines the customer-facing browsing operations.
type CatalogUsecase interface {
	// ListBusinessTypes returns every business type for the customer home screen.
	ListBusinessTypes(ctx context.Context) ([]*entity.BusinessType, error)

	// ListMerchants returns the active merchants of a business type with the
	// caller's favorite flags. A non-empty search filters by store name.
	ListMerchants(ctx context.Context, customerID, businessTypeID uuid.UUID, search string) ([]MerchantSummary, error)

	// GetMerchantCatalog returns a merchant's products grouped by category.
	GetMerchantCatalog(ctx context.Context, merchantID uuid.UUID) (*MerchantCatalog, error)
}
