package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table. UsedCount is only ever advanced by
// the guarded UPDATE in the coupon repository, never by read-modify-write.
type CouponModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code           string    `gorm:"type:varchar(50);unique;not null"`
	Description    string    `gorm:"type:text"`
	DiscountType   string    `gorm:"type:varchar(20);not null"`
	DiscountValue  float64   `gorm:"type:decimal(10,2);not null"`
	MaxDiscount    float64   `gorm:"type:decimal(10,2);not null;default:0"`
	MinOrderAmount float64   `gorm:"type:decimal(10,2);not null;default:0"`
	UsageLimit     int       `gorm:"not null"`
	UsedCount      int       `gorm:"not null;default:0"`
	ValidFrom      time.Time `gorm:"not null"`
	ValidUntil     time.Time `gorm:"not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
