// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cookify/internal/domain/entity"
	"cookify/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when a coupon is not found.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponUsageExceeded is returned by IncrementUsage when the guarded
	// update matches no row, i.e. the usage limit was hit concurrently.
	ErrCouponUsageExceeded = errors.New("coupon usage limit exceeded")
)

// CouponRepository defines the operations for coupon persistence.
type CouponRepository interface {
	// FindByCode retrieves a coupon by its unique redemption code.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// FindByID retrieves a coupon by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// List retrieves all coupons, newest first.
	List(ctx context.Context) ([]*entity.Coupon, error)

	// Create persists a new coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// Update modifies an existing coupon.
	Update(ctx context.Context, coupon *entity.Coupon) error

	// IncrementUsage atomically increments used_count, guarded by
	// used_count < usage_limit so that two concurrent redemptions cannot both
	// consume the last slot. Returns ErrCouponUsageExceeded when no row matched.
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}
