package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address owned by exactly one customer. Lookups are
// always filtered by the owning customer id, never by a client-supplied owner.
type Address struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID // The owning customer account.
	Label       string    // A short name, e.g. "Casa", "Oficina".
	Description string    // Free-form directions for the courier.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
