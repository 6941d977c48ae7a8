// Package handler contains the HTTP handlers for the application.
package handler

import (
	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountView is the outward representation of an account. Credentials and
// one-time tokens never leave the process.
type AccountView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username,omitempty"`
	Role     string    `json:"role"`
	Active   bool      `json:"active"`

	Name       string `json:"name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
	NationalID string `json:"national_id,omitempty"`

	Merchant *MerchantProfileView `json:"merchant,omitempty"`
	Courier  *CourierProfileView  `json:"courier,omitempty"`
}

// MerchantProfileView is the outward representation of a merchant profile.
type MerchantProfileView struct {
	StoreName      string    `json:"store_name"`
	LogoURL        string    `json:"logo_url,omitempty"`
	OpensAt        string    `json:"opens_at"`
	ClosesAt       string    `json:"closes_at"`
	BusinessTypeID uuid.UUID `json:"business_type_id"`
}

// CourierProfileView is the outward representation of a courier profile.
type CourierProfileView struct {
	Available bool `json:"available"`
}

func toAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	view := &AccountView{
		ID:         account.ID,
		Email:      account.Email,
		Username:   account.Username,
		Role:       account.Role.String(),
		Active:     account.Active,
		Name:       account.Name,
		LastName:   account.LastName,
		Phone:      account.Phone,
		PhotoURL:   account.PhotoURL,
		NationalID: account.NationalID,
	}
	if account.MerchantProfile != nil {
		view.Merchant = &MerchantProfileView{
			StoreName:      account.MerchantProfile.StoreName,
			LogoURL:        account.MerchantProfile.LogoURL,
			OpensAt:        account.MerchantProfile.OpensAt,
			ClosesAt:       account.MerchantProfile.ClosesAt,
			BusinessTypeID: account.MerchantProfile.BusinessTypeID,
		}
	}
	if account.CourierProfile != nil {
		view.Courier = &CourierProfileView{
			Available: account.CourierProfile.Available,
		}
	}

	return view
}
