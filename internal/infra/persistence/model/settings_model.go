package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsModel is the GORM-specific struct for the 'settings' table.
// A single row with ID 1 holds the system-wide configuration.
type SettingsModel struct {
	ID        int64           `gorm:"primaryKey"`
	TaxRate   decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "settings"
}
