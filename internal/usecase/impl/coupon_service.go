package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cookify/internal/delivery/context"
	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	"cookify/internal/domain/service"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	txManager     repository.TransactionManager
	couponRepo    repository.CouponRepository
	qrCodeService service.QRCodeService
	logger        *slog.Logger
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CouponRepo    repository.CouponRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		txManager:     params.TxManager,
		couponRepo:    params.CouponRepo,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCoupons returns all coupons, newest first.
func (srv *couponService) ListCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	// Single query operation - use direct repository instance
	coupons, err := srv.couponRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list coupons", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return coupons, nil
}

// CreateCoupon persists a new coupon after validating its discount policy
// and validity window.
func (srv *couponService) CreateCoupon(ctx context.Context, input *usecase.CreateCouponInput) (*entity.Coupon, error) {
	srv.log(ctx).Info("Creating coupon", slog.String("code", input.Code))

	discountType := entity.DiscountType(input.DiscountType)
	if !discountType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown discount type")
	}
	if discountType == entity.DiscountPercentage && input.DiscountValue > 100 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "percentage discount cannot exceed 100")
	}
	if !input.ValidUntil.After(input.ValidFrom) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "validity window must end after it starts")
	}

	newCoupon := &entity.Coupon{
		Code:           input.Code,
		Description:    input.Description,
		DiscountType:   discountType,
		DiscountValue:  input.DiscountValue,
		MaxDiscount:    input.MaxDiscount,
		MinOrderAmount: input.MinOrderAmount,
		UsageLimit:     input.UsageLimit,
		ValidFrom:      input.ValidFrom,
		ValidUntil:     input.ValidUntil,
		IsActive:       true,
	}

	if err := srv.couponRepo.Create(ctx, newCoupon); err != nil {
		srv.log(ctx).Error("Failed to create coupon", slog.String("code", input.Code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create coupon")
	}

	return newCoupon, nil
}

// UpdateCoupon applies a partial update to an existing coupon.
func (srv *couponService) UpdateCoupon(ctx context.Context, id uuid.UUID, input *usecase.UpdateCouponInput) (*entity.Coupon, error) {
	srv.log(ctx).Info("Updating coupon", slog.Any("couponID", id))

	var updatedCoupon *entity.Coupon
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.NewCouponRepository()

		coupon, err := couponRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found")
			}

			return errors.Wrap(err, "failed to find coupon")
		}

		applyCouponUpdate(coupon, input)

		if !coupon.ValidUntil.After(coupon.ValidFrom) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "validity window must end after it starts")
		}
		if coupon.UsageLimit < coupon.UsedCount {
			return errors.Wrap(domainerrors.ErrValidationFailed, "usage limit cannot drop below consumed count")
		}

		if err := couponRepo.Update(ctx, coupon); err != nil {
			return errors.Wrap(err, "failed to update coupon")
		}
		updatedCoupon = coupon

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update coupon", slog.Any("couponID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute coupon update transaction")
	}

	return updatedCoupon, nil
}

// PreviewCoupon validates the coupon against a subtotal without consuming a
// usage slot.
func (srv *couponService) PreviewCoupon(ctx context.Context, code string, subtotal float64) (*usecase.CouponPreviewOutput, error) {
	srv.log(ctx).Debug("Previewing coupon", slog.String("code", code))

	coupon, err := srv.couponRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCouponNotFound, "failed to preview coupon")
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	if err := coupon.ValidateFor(time.Now(), subtotal); err != nil {
		return nil, wrapCouponValidation(err)
	}

	discount := coupon.Discount(subtotal)

	return &usecase.CouponPreviewOutput{
		Code:           coupon.Code,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		FinalAmount:    subtotal - discount,
	}, nil
}

// GenerateShareQR renders a PNG QR code that encodes the coupon for sharing.
func (srv *couponService) GenerateShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	srv.log(ctx).Debug("Generating coupon share QR", slog.Any("couponID", id))

	coupon, err := srv.couponRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCouponNotFound, "failed to generate share QR")
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	png, err := srv.qrCodeService.GenerateCouponQR(coupon.ID, coupon.Code)
	if err != nil {
		srv.log(ctx).Error("Failed to generate coupon QR", slog.Any("couponID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate coupon QR")
	}

	return png, nil
}

// wrapCouponValidation maps the entity-level validation sentinels onto AppErrors.
func wrapCouponValidation(err error) error {
	if errors.Is(err, entity.ErrCouponExhausted) {
		return errors.Wrap(domainerrors.ErrCouponExhausted, "coupon cannot be applied")
	}

	return errors.Wrap(domainerrors.ErrCouponNotApplicable.WithDetails(err.Error()), "coupon cannot be applied")
}

func applyCouponUpdate(coupon *entity.Coupon, input *usecase.UpdateCouponInput) {
	if input.Description != nil {
		coupon.Description = *input.Description
	}
	if input.MaxDiscount != nil {
		coupon.MaxDiscount = *input.MaxDiscount
	}
	if input.MinOrderAmount != nil {
		coupon.MinOrderAmount = *input.MinOrderAmount
	}
	if input.UsageLimit != nil {
		coupon.UsageLimit = *input.UsageLimit
	}
	if input.ValidFrom != nil {
		coupon.ValidFrom = *input.ValidFrom
	}
	if input.ValidUntil != nil {
		coupon.ValidUntil = *input.ValidUntil
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}
}
