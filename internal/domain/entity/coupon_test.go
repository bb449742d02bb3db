package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramadanCoupon() *Coupon {
	return &Coupon{
		Code:           "RAMADAN20",
		DiscountType:   DiscountPercentage,
		DiscountValue:  20,
		MaxDiscount:    200,
		MinOrderAmount: 500,
		UsageLimit:     100,
		UsedCount:      10,
		ValidFrom:      time.Now().Add(-24 * time.Hour),
		ValidUntil:     time.Now().Add(24 * time.Hour),
		IsActive:       true,
	}
}

func TestCoupon_ValidateFor_Success(t *testing.T) {
	coupon := ramadanCoupon()

	err := coupon.ValidateFor(time.Now(), 1000)
	require.NoError(t, err)
}

func TestCoupon_ValidateFor_BelowMinOrder(t *testing.T) {
	coupon := ramadanCoupon()

	err := coupon.ValidateFor(time.Now(), 400)
	assert.ErrorIs(t, err, ErrCouponBelowMinOrder)
}

func TestCoupon_ValidateFor_Window(t *testing.T) {
	coupon := ramadanCoupon()

	err := coupon.ValidateFor(coupon.ValidFrom.Add(-time.Hour), 1000)
	assert.ErrorIs(t, err, ErrCouponNotYetValid)

	err = coupon.ValidateFor(coupon.ValidUntil.Add(time.Hour), 1000)
	assert.ErrorIs(t, err, ErrCouponExpired)
}

func TestCoupon_ValidateFor_Exhausted(t *testing.T) {
	coupon := ramadanCoupon()
	coupon.UsedCount = coupon.UsageLimit

	err := coupon.ValidateFor(time.Now(), 1000)
	assert.ErrorIs(t, err, ErrCouponExhausted)
}

func TestCoupon_ValidateFor_Inactive(t *testing.T) {
	coupon := ramadanCoupon()
	coupon.IsActive = false

	err := coupon.ValidateFor(time.Now(), 1000)
	assert.ErrorIs(t, err, ErrCouponInactive)
}

func TestCoupon_Discount_PercentageCapped(t *testing.T) {
	coupon := ramadanCoupon()

	// 20% of 1000 is 200, exactly at the cap.
	assert.InDelta(t, 200, coupon.Discount(1000), 0.001)

	// 20% of 2000 is 400, capped at 200.
	assert.InDelta(t, 200, coupon.Discount(2000), 0.001)

	// 20% of 600 is 120, below the cap.
	assert.InDelta(t, 120, coupon.Discount(600), 0.001)
}

func TestCoupon_Discount_PercentageUncapped(t *testing.T) {
	coupon := ramadanCoupon()
	coupon.MaxDiscount = 0

	assert.InDelta(t, 400, coupon.Discount(2000), 0.001)
}

func TestCoupon_Discount_Fixed(t *testing.T) {
	coupon := &Coupon{
		DiscountType:  DiscountFixed,
		DiscountValue: 150,
	}

	assert.InDelta(t, 150, coupon.Discount(1000), 0.001)

	// A fixed discount never exceeds the subtotal.
	assert.InDelta(t, 100, coupon.Discount(100), 0.001)
}

func TestCoupon_Discount_Rounding(t *testing.T) {
	coupon := &Coupon{
		DiscountType:  DiscountPercentage,
		DiscountValue: 15,
	}

	// 15% of 333.33 is 49.9995, rounded to 50.00.
	assert.InDelta(t, 50.00, coupon.Discount(333.33), 0.001)
}
