// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterPersonInput defines the data required to register a customer or courier.
type RegisterPersonInput struct {
	Name            string
	LastName        string
	Phone           string
	Email           string
	Username        string
	PhotoURL        string
	Password        string
	PasswordConfirm string
}

// RegisterMerchantInput defines the data required to register a merchant.
type RegisterMerchantInput struct {
	StoreName       string
	Phone           string
	Email           string
	Username        string
	LogoURL         string
	OpensAt         string
	ClosesAt        string
	BusinessTypeID  uuid.UUID
	Password        string
	PasswordConfirm string
}

// LoginInput defines the data required to log in.
// Login accepts either the username or the email address.
type LoginInput struct {
	Login    string
	Password string
}

// ResetPasswordInput defines the data required to complete a password reset.
type ResetPasswordInput struct {
	Token           string
	Password        string
	PasswordConfirm string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type AuthUsecase interface {
	// RegisterCustomer creates an inactive customer account and mails the activation link.
	RegisterCustomer(ctx context.Context, input RegisterPersonInput) (*RegisterOutput, error)

	// RegisterCourier creates an inactive courier account and mails the activation link.
	RegisterCourier(ctx context.Context, input RegisterPersonInput) (*RegisterOutput, error)

	// RegisterMerchant creates an inactive merchant account and mails the activation link.
	RegisterMerchant(ctx context.Context, input RegisterMerchantInput) (*RegisterOutput, error)

	// Login authenticates by username or email. The session is persisted
	// before any tokens are returned.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Activate consumes a single-use activation token and activates the account.
	Activate(ctx context.Context, token string) error

	// RequestPasswordReset generates a single-use reset token and mails the reset link.
	// The login may be a username or an email address.
	RequestPasswordReset(ctx context.Context, login string) error

	// ResetPassword consumes a reset token and replaces the account password.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// Refresh exchanges a valid refresh token for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// Logout deletes the persisted session behind the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
