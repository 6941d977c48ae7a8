package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the ITBIS percentage applied when no settings record
// has been stored yet.
var DefaultTaxRate = decimal.NewFromInt(18)

// Settings is the process-wide singleton configuration record. Only the tax
// percentage lives here today; every new order reads it at creation time.
type Settings struct {
	ID        int64 // Always 1. Single-row table.
	TaxRate   decimal.Decimal
	UpdatedAt time.Time
}
