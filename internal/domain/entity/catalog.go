package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusinessType classifies merchants (restaurant, pharmacy, grocery, ...).
// Customers browse merchants by type; administrators maintain the list.
type BusinessType struct {
	ID          uuid.UUID
	Name        string
	Description string
	IconURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category is a merchant-owned grouping of products inside its catalog.
type Category struct {
	ID          uuid.UUID
	MerchantID  uuid.UUID // The owning merchant account.
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product belongs to exactly one merchant and optionally to one of the
// merchant's categories.
type Product struct {
	ID          uuid.UUID
	MerchantID  uuid.UUID
	CategoryID  *uuid.UUID // Nil when the product is uncategorized.
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
