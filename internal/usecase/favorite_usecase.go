package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteMerchant is one entry of a customer's favorites list.
type FavoriteMerchant struct {
	MerchantID uuid.UUID
	StoreName  string
	LogoURL    string
	OpensAt    string
	ClosesAt   string
}

// FavoriteUsecase defines the customer favorite-merchant operations.
type FavoriteUsecase interface {
	// ListFavorites returns the customer's favorite merchants with their
	// storefront details.
	ListFavorites(ctx context.Context, customerID uuid.UUID) ([]FavoriteMerchant, error)

	// Toggle flips the favorite mark for a merchant and reports the
	// resulting state: true when the merchant is now a favorite.
	Toggle(ctx context.Context, customerID, merchantID uuid.UUID) (bool, error)
}
