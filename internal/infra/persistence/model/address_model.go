package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Each address belongs to a single customer.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Label       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
