package usecase

import (
	"context"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePersonProfileInput defines the editable fields of a customer or
// courier profile. Email and username stay immutable here.
type UpdatePersonProfileInput struct {
	Name     string
	LastName string
	Phone    string
	PhotoURL string
}

// UpdateMerchantProfileInput defines the editable fields of a merchant profile.
type UpdateMerchantProfileInput struct {
	StoreName string
	Phone     string
	LogoURL   string
	OpensAt   string
	ClosesAt  string
}

// ProfileUsecase defines profile view and update operations for every role.
type ProfileUsecase interface {
	// GetProfile returns the caller's account with its role profile.
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// UpdatePersonProfile updates a customer or courier profile.
	UpdatePersonProfile(ctx context.Context, accountID uuid.UUID, input UpdatePersonProfileInput) (*entity.Account, error)

	// UpdateMerchantProfile updates a merchant profile.
	UpdateMerchantProfile(ctx context.Context, accountID uuid.UUID, input UpdateMerchantProfileInput) (*entity.Account, error)
}
