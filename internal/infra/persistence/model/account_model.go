package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. One row per user of any role;
// role-specific data lives in the profile tables below.
type AccountModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Username        string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Role            string    `gorm:"type:varchar(20);not null;index"`
	Active          bool      `gorm:"not null;default:false"`
	ActivationToken string    `gorm:"type:varchar(64);index"`
	ResetToken      string    `gorm:"type:varchar(64);index"`
	Name            string    `gorm:"type:varchar(100)"`
	LastName        string    `gorm:"type:varchar(100)"`
	Phone           string    `gorm:"type:varchar(30)"`
	PhotoURL        string    `gorm:"type:varchar(512)"`
	NationalID      string    `gorm:"type:varchar(30)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	MerchantProfile *MerchantProfileModel `gorm:"foreignKey:AccountID"`
	CourierProfile  *CourierProfileModel  `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// MerchantProfileModel mirrors the 'merchant_profiles' table. AccountID references accounts.id.
type MerchantProfileModel struct {
	AccountID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreName      string    `gorm:"type:varchar(100);not null"`
	LogoURL        string    `gorm:"type:varchar(512)"`
	OpensAt        string    `gorm:"type:varchar(5)"`
	ClosesAt       string    `gorm:"type:varchar(5)"`
	BusinessTypeID uuid.UUID `gorm:"type:uuid;not null;index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantProfileModel) TableName() string {
	return "merchant_profiles"
}

// CourierProfileModel mirrors the 'courier_profiles' table. AccountID references accounts.id.
type CourierProfileModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Available bool      `gorm:"not null;default:true;index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourierProfileModel) TableName() string {
	return "courier_profiles"
}
