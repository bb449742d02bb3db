package usecase

import (
	"context"
	"time"

	"cookify/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCouponInput represents the input for creating a promotional coupon.
type CreateCouponInput struct {
	Code           string    `json:"code" validate:"required,max=50"`
	Description    string    `json:"description" validate:"max=500"`
	DiscountType   string    `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue  float64   `json:"discount_value" validate:"required,gt=0"`
	MaxDiscount    float64   `json:"max_discount" validate:"gte=0"`
	MinOrderAmount float64   `json:"min_order_amount" validate:"gte=0"`
	UsageLimit     int       `json:"usage_limit" validate:"required,gt=0"`
	ValidFrom      time.Time `json:"valid_from" validate:"required"`
	ValidUntil     time.Time `json:"valid_until" validate:"required"`
}

// UpdateCouponInput represents a partial update to an existing coupon.
type UpdateCouponInput struct {
	Description    *string    `json:"description,omitempty"`
	MaxDiscount    *float64   `json:"max_discount,omitempty"`
	MinOrderAmount *float64   `json:"min_order_amount,omitempty"`
	UsageLimit     *int       `json:"usage_limit,omitempty"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
}

// CouponPreviewOutput is the result of a dry-run coupon application.
type CouponPreviewOutput struct {
	Code           string  `json:"code"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
}

// CouponUsecase defines the interface for coupon administration and preview.
// Actual redemption happens inside order placement; see OrderUsecase.
type CouponUsecase interface {
	// ListCoupons returns all coupons, newest first (admin only).
	ListCoupons(ctx context.Context) ([]*entity.Coupon, error)

	// CreateCoupon persists a new coupon (admin only).
	CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error)

	// UpdateCoupon applies a partial update (admin only).
	UpdateCoupon(ctx context.Context, id uuid.UUID, input *UpdateCouponInput) (*entity.Coupon, error)

	// PreviewCoupon validates the coupon against a subtotal without consuming
	// a usage slot.
	PreviewCoupon(ctx context.Context, code string, subtotal float64) (*CouponPreviewOutput, error)

	// GenerateShareQR renders a PNG QR code that encodes the coupon for
	// sharing in print or chat.
	GenerateShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
