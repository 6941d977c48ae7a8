package usecase

import (
	"context"

	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoleCount pairs the active and inactive account totals for one role.
type RoleCount struct {
	Active   int64
	Inactive int64
}

// DashboardStats is the admin landing view. Each figure comes from its own
// query; the numbers are not a consistent snapshot.
type DashboardStats struct {
	OrdersTotal int64
	OrdersToday int64
	Products    int64
	Customers   RoleCount
	Merchants   RoleCount
	Couriers    RoleCount
}

// AccountListing is one row of an admin account list, enriched with the
// figures the original listing shows per role.
type AccountListing struct {
	Account    *entity.Account
	OrderCount int64
	// ProductCount is only populated for merchants.
	ProductCount int64
}

// CreateAdminInput defines the data to create an administrator account.
type CreateAdminInput struct {
	Name            string
	LastName        string
	NationalID      string
	Email           string
	Username        string
	Password        string
	PasswordConfirm string
}

// UpdateAdminInput defines the editable fields of an administrator account.
// An empty password leaves the stored credential untouched.
type UpdateAdminInput struct {
	Name            string
	LastName        string
	NationalID      string
	Email           string
	Username        string
	Password        string
	PasswordConfirm string
}

// BusinessTypeInput defines the data to create or update a business type.
type BusinessTypeInput struct {
	Name        string
	Description string
	IconURL     string
}

// AdminUsecase defines the administrator operations: dashboard, account
// management with self-protection, business types and system settings.
type AdminUsecase interface {
	// Dashboard returns the landing page counters.
	Dashboard(ctx context.Context) (*DashboardStats, error)

	// ListAccounts returns the accounts of a role with their per-role figures.
	ListAccounts(ctx context.Context, role entity.Role) ([]AccountListing, error)

	// ToggleActive flips an account's activation flag. Administrators can
	// never deactivate themselves.
	ToggleActive(ctx context.Context, adminID, accountID uuid.UUID) (*entity.Account, error)

	// CreateAdmin registers a new administrator. Admin accounts are created
	// active; no activation mail is involved.
	CreateAdmin(ctx context.Context, input CreateAdminInput) (*entity.Account, error)

	// UpdateAdmin modifies another administrator. Self-edit is rejected.
	UpdateAdmin(ctx context.Context, adminID, targetID uuid.UUID, input UpdateAdminInput) (*entity.Account, error)

	// ListBusinessTypes returns every business type with merchant counts.
	ListBusinessTypes(ctx context.Context) ([]*entity.BusinessType, error)

	// CreateBusinessType adds a business type.
	CreateBusinessType(ctx context.Context, input BusinessTypeInput) (*entity.BusinessType, error)

	// UpdateBusinessType modifies a business type.
	UpdateBusinessType(ctx context.Context, id uuid.UUID, input BusinessTypeInput) (*entity.BusinessType, error)

	// DeleteBusinessType removes a business type still unused by merchants.
	DeleteBusinessType(ctx context.Context, id uuid.UUID) error

	// GetSettings returns the system settings, seeding defaults on first use.
	GetSettings(ctx context.Context) (*entity.Settings, error)

	// UpdateTaxRate changes the system-wide tax rate applied to new orders.
	// Existing orders keep their snapshotted rate.
	UpdateTaxRate(ctx context.Context, rate decimal.Decimal) (*entity.Settings, error)
}
