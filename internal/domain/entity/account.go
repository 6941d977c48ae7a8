// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity in the system. One account carries exactly
// one role; role-specific data lives in the optional profile pointers,
// discriminated by the Role tag rather than a pile of nullable columns.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // Primary contact email, unique across every role.
	Username     string    // Login alias; empty for merchants, unique where present.
	PasswordHash string    // The bcrypt hash of the account credential. Never the plaintext.
	Role         Role      // Discriminator: which profile pointer (if any) is populated.
	Active       bool      // Activation flag. Accounts are created inactive except administrators.

	ActivationToken string // One-time token mailed on registration; cleared on activation.
	ResetToken      string // One-time token mailed on password-reset request; cleared on reset.

	Name       string // Given name (customers, couriers, administrators).
	LastName   string
	Phone      string
	PhotoURL   string
	NationalID string // Cédula; only meaningful for administrators.

	MerchantProfile *MerchantProfile // Non-nil only when Role == RoleMerchant.
	CourierProfile  *CourierProfile  // Non-nil only when Role == RoleCourier.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MerchantProfile holds data specific to the merchant role.
type MerchantProfile struct {
	AccountID      uuid.UUID // Foreign key to the owning Account.
	StoreName      string    // Public store name shown to customers.
	LogoURL        string
	OpensAt        string    // Business hours, "HH:MM".
	ClosesAt       string    // Business hours, "HH:MM".
	BusinessTypeID uuid.UUID // Reference to the BusinessType the store belongs to.
	UpdatedAt      time.Time
}

// CourierProfile holds data specific to the courier role.
type CourierProfile struct {
	AccountID uuid.UUID // Foreign key to the owning Account.
	Available bool      // Eligibility for a new assignment. Managed by the order workflow.
	UpdatedAt time.Time
}

// DisplayName returns the name shown in session data and mails:
// the store name for merchants, the given name otherwise.
func (a *Account) DisplayName() string {
	if a.Role == RoleMerchant && a.MerchantProfile != nil {
		return a.MerchantProfile.StoreName
	}

	return a.Name
}

// IsAvailableCourier reports whether the account can take a new delivery.
func (a *Account) IsAvailableCourier() bool {
	return a.Role == RoleCourier && a.Active && a.CourierProfile != nil && a.CourierProfile.Available
}
