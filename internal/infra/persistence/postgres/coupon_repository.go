package postgres

import (
	"context"

	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	"cookify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByCode retrieves a coupon by its unique redemption code.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// FindByID retrieves a coupon by its unique ID.
func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by ID")
	}

	return toCouponDomain(&couponM), nil
}

// List retrieves all coupons, newest first.
func (repo *couponRepository) List(ctx context.Context) ([]*entity.Coupon, error) {
	var couponModels []*model.CouponModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&couponModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// Create persists a new coupon.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCouponCodeExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required coupon information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Update modifies an existing coupon. UsedCount is excluded on purpose; it
// only moves through IncrementUsage.
func (repo *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", coupon.ID).
		Updates(map[string]any{
			"description":      coupon.Description,
			"discount_type":    string(coupon.DiscountType),
			"discount_value":   coupon.DiscountValue,
			"max_discount":     coupon.MaxDiscount,
			"min_order_amount": coupon.MinOrderAmount,
			"usage_limit":      coupon.UsageLimit,
			"valid_from":       coupon.ValidFrom,
			"valid_until":      coupon.ValidUntil,
			"is_active":        coupon.IsActive,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// IncrementUsage atomically increments used_count, guarded by
// used_count < usage_limit. Two concurrent redemptions of the last slot race
// on this UPDATE; the loser matches no row and gets ErrCouponUsageExceeded.
func (repo *couponRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ? AND used_count < usage_limit", id).
		Update("used_count", gorm.Expr("used_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment coupon usage")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponUsageExceeded
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:             data.ID,
		Code:           data.Code,
		Description:    data.Description,
		DiscountType:   entity.DiscountType(data.DiscountType),
		DiscountValue:  data.DiscountValue,
		MaxDiscount:    data.MaxDiscount,
		MinOrderAmount: data.MinOrderAmount,
		UsageLimit:     data.UsageLimit,
		UsedCount:      data.UsedCount,
		ValidFrom:      data.ValidFrom,
		ValidUntil:     data.ValidUntil,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:             data.ID,
		Code:           data.Code,
		Description:    data.Description,
		DiscountType:   string(data.DiscountType),
		DiscountValue:  data.DiscountValue,
		MaxDiscount:    data.MaxDiscount,
		MinOrderAmount: data.MinOrderAmount,
		UsageLimit:     data.UsageLimit,
		UsedCount:      data.UsedCount,
		ValidFrom:      data.ValidFrom,
		ValidUntil:     data.ValidUntil,
		IsActive:       data.IsActive,
	}
}
