package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Status values are the storefront's
// French labels: "en attente", "payé", "annulé".
type OrderModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Total     float64   `gorm:"type:decimal(12,2);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'en attente';index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Lines    []OrderLineModel `gorm:"foreignKey:OrderID"`
	Customer *UserModel       `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_lines' table. ProductName and Subtotal
// are frozen at checkout time so later catalog edits never rewrite history.
type OrderLineModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Size        string    `gorm:"type:varchar(10);not null"`
	Quantity    int       `gorm:"not null"`
	Subtotal    float64   `gorm:"type:decimal(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
