package model

import (
	"time"

	"github.com/google/uuid"
)

// CartLineModel mirrors the 'cart_lines' table. OwnerKey is either a user
// UUID string or a guest token; the composite unique index makes concurrent
// adds of the same (owner, product, size) collapse onto one row.
type CartLineModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerKey    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_owner_product_size,priority:1;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_owner_product_size,priority:2"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Size        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_cart_owner_product_size,priority:3"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   float64   `gorm:"type:decimal(12,2);not null"`
	Total       float64   `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
