package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusinessTypeModel is the GORM-specific struct for the 'business_types' table.
type BusinessTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	IconURL     string    `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessTypeModel) TableName() string {
	return "business_types"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
// Each category belongs to a single merchant.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MerchantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
// CategoryID is nullable: deleting a category leaves its products uncategorized.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL    string          `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
