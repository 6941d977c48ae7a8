package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is the join between a customer and a bookmarked merchant.
// Presence is the only state; the store enforces a unique
// (customer, merchant) pair so a racing double toggle cannot duplicate it.
type Favorite struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	MerchantID uuid.UUID
	CreatedAt  time.Time
}
