package model

import (
	"time"

	"github.com/google/uuid"
)

// MasterOrderModel mirrors the 'master_orders' table, the aggregate root of a
// purchase. There is deliberately no ON DELETE CASCADE from users: deleting a
// user with order history is rejected at the database level.
type MasterOrderModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	ChefID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	AddressID           uuid.UUID  `gorm:"type:uuid;not null"`
	CouponID            *uuid.UUID `gorm:"type:uuid"`
	Status              string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	TotalAmount         float64    `gorm:"type:decimal(12,2);not null"`
	DiscountAmount      float64    `gorm:"type:decimal(12,2);not null;default:0"`
	FinalAmount         float64    `gorm:"type:decimal(12,2);not null"`
	SpecialInstructions string     `gorm:"type:text"`
	EstimatedDelivery   *time.Time
	ActualDelivery      *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (MasterOrderModel) TableName() string {
	return "master_orders"
}

// OrderItemModel mirrors the 'order_items' table. UnitPrice snapshots the
// recipe price at placement time and TotalPrice = Quantity * UnitPrice.
type OrderItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"not null"`
	UnitPrice  float64   `gorm:"type:decimal(10,2);not null"`
	TotalPrice float64   `gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
