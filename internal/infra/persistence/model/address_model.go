package model

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddressModel mirrors the 'shipping_addresses' table. A fresh row is
// written per checkout; addresses are never edited in place.
type ShippingAddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(30);not null"`
	City      string    `gorm:"type:varchar(100);not null"`
	Address1  string    `gorm:"type:varchar(255);not null"`
	Address2  string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingAddressModel) TableName() string {
	return "shipping_addresses"
}
