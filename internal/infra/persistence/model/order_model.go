package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// The address label and description are copied at order time so later edits
// to the customer's address book never change a placed order.
type OrderModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	MerchantID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID          *uuid.UUID      `gorm:"type:uuid;index"`
	AddressID          uuid.UUID       `gorm:"type:uuid;not null"`
	AddressLabel       string          `gorm:"type:varchar(100);not null"`
	AddressDescription string          `gorm:"type:text;not null"`
	Subtotal           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TaxRate            decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Tax                decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total              decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status             string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Name, price and image are snapshots of the product at order time.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL  string          `gorm:"type:varchar(512)"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
