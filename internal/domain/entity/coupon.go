// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DiscountType distinguishes the two coupon discount policies.
type DiscountType string

const (
	// DiscountPercentage discounts a percentage of the subtotal, capped at MaxDiscount.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed discounts a fixed amount.
	DiscountFixed DiscountType = "fixed"
)

// IsValid checks if the DiscountType is a valid value.
func (d DiscountType) IsValid() bool {
	switch d {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

// Validation errors returned by Coupon.ValidateFor.
// They are plain sentinels so the usecase layer can map them onto AppErrors.
var (
	ErrCouponInactive      = couponError("coupon is not active")
	ErrCouponNotYetValid   = couponError("coupon validity window has not started")
	ErrCouponExpired       = couponError("coupon validity window has ended")
	ErrCouponExhausted     = couponError("coupon usage limit reached")
	ErrCouponBelowMinOrder = couponError("order subtotal below coupon minimum")
)

type couponError string

func (e couponError) Error() string { return string(e) }

// Coupon is a promotional code with a validity window, a usage cap and one of
// two discount policies (percentage with cap, or fixed amount).
type Coupon struct {
	ID             uuid.UUID    // The Global Unique Identifier (GUID) for the coupon.
	Code           string       // Unique redemption code, e.g. "RAMADAN20".
	Description    string       // Human-readable description of the promotion.
	DiscountType   DiscountType // Percentage or fixed discount.
	DiscountValue  float64      // Percentage (0-100) or fixed amount, per DiscountType.
	MaxDiscount    float64      // Cap for percentage discounts; 0 means uncapped.
	MinOrderAmount float64      // Minimum subtotal required to redeem.
	UsageLimit     int          // Total number of redemptions allowed.
	UsedCount      int          // Redemptions consumed so far.
	ValidFrom      time.Time    // Start of the validity window, inclusive.
	ValidUntil     time.Time    // End of the validity window, inclusive.
	IsActive       bool         // Inactive coupons can never be redeemed.
	CreatedAt      time.Time    // Timestamp of when this coupon was created.
	UpdatedAt      time.Time    // Timestamp of the last modification.
}

// ValidateFor reports whether the coupon may be applied to an order with the
// given subtotal at the given time. It checks the active flag, the validity
// window, the usage cap and the minimum order amount, in that order.
func (c *Coupon) ValidateFor(now time.Time, subtotal float64) error {
	if !c.IsActive {
		return ErrCouponInactive
	}
	if now.Before(c.ValidFrom) {
		return ErrCouponNotYetValid
	}
	if now.After(c.ValidUntil) {
		return ErrCouponExpired
	}
	if c.UsedCount >= c.UsageLimit {
		return ErrCouponExhausted
	}
	if subtotal < c.MinOrderAmount {
		return ErrCouponBelowMinOrder
	}

	return nil
}

// Discount computes the discount amount for the given subtotal.
// Percentage discounts are capped at MaxDiscount when one is set; the result
// never exceeds the subtotal and is rounded to two decimal places.
func (c *Coupon) Discount(subtotal float64) float64 {
	var discount float64

	switch c.DiscountType {
	case DiscountPercentage:
		discount = subtotal * c.DiscountValue / 100
		if c.MaxDiscount > 0 && discount > c.MaxDiscount {
			discount = c.MaxDiscount
		}
	case DiscountFixed:
		discount = c.DiscountValue
	}

	if discount > subtotal {
		discount = subtotal
	}

	return math.Round(discount*100) / 100
}
