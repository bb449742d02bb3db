package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. An order may accumulate several
// attempts, so OrderID is indexed but not unique.
type PaymentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount         float64   `gorm:"type:decimal(12,2);not null"`
	Method         string    `gorm:"type:varchar(20);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"`
	TransactionRef string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
