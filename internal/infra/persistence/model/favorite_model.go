package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
// The composite unique index keeps a customer from favoriting a merchant twice.
type FavoriteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_customer_merchant"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_customer_merchant"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
