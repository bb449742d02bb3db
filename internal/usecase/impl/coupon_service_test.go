package impl

import (
	"context"
	"testing"
	"time"

	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	mockRepo "cookify/internal/mocks/repository"
	mockSvc "cookify/internal/mocks/service"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service       usecase.CouponUsecase
	txManager     *mockRepo.MockTransactionManager
	couponRepo    *mockRepo.MockCouponRepository
	qrCodeService *mockSvc.MockQRCodeService
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	qrCodeService := mockSvc.NewMockQRCodeService(t)

	service := NewCouponService(CouponServiceParams{
		TxManager:     txManager,
		CouponRepo:    couponRepo,
		QRCodeService: qrCodeService,
		Logger:        newDiscardLogger(),
	})

	return couponServiceFixtures{
		service:       service,
		txManager:     txManager,
		couponRepo:    couponRepo,
		qrCodeService: qrCodeService,
	}
}

func activeCoupon() *entity.Coupon {
	return &entity.Coupon{
		ID:             uuid.New(),
		Code:           "RAMADAN20",
		DiscountType:   entity.DiscountPercentage,
		DiscountValue:  20,
		MaxDiscount:    200,
		MinOrderAmount: 500,
		UsageLimit:     100,
		UsedCount:      10,
		ValidFrom:      time.Now().Add(-time.Hour),
		ValidUntil:     time.Now().Add(24 * time.Hour),
		IsActive:       true,
	}
}

func TestCouponService_CreateCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	input := &usecase.CreateCouponInput{
		Code:           "EID15",
		DiscountType:   "percentage",
		DiscountValue:  15,
		MaxDiscount:    150,
		MinOrderAmount: 300,
		UsageLimit:     50,
		ValidFrom:      time.Now(),
		ValidUntil:     time.Now().Add(7 * 24 * time.Hour),
	}

	fx.couponRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Coupon")).
		Run(func(ctx context.Context, coupon *entity.Coupon) {
			coupon.ID = uuid.New()
		}).
		Return(nil)

	coupon, err := fx.service.CreateCoupon(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "EID15", coupon.Code)
	assert.True(t, coupon.IsActive)
	assert.Zero(t, coupon.UsedCount)
}

func TestCouponService_CreateCoupon_InvalidWindow(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	input := &usecase.CreateCouponInput{
		Code:          "BROKEN",
		DiscountType:  "fixed",
		DiscountValue: 50,
		UsageLimit:    10,
		ValidFrom:     time.Now().Add(24 * time.Hour),
		ValidUntil:    time.Now(),
	}

	coupon, err := fx.service.CreateCoupon(ctx, input)
	require.Error(t, err)
	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCouponService_CreateCoupon_PercentageOverHundred(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	input := &usecase.CreateCouponInput{
		Code:          "TOOMUCH",
		DiscountType:  "percentage",
		DiscountValue: 120,
		UsageLimit:    10,
		ValidFrom:     time.Now(),
		ValidUntil:    time.Now().Add(time.Hour),
	}

	coupon, err := fx.service.CreateCoupon(ctx, input)
	require.Error(t, err)
	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCouponService_PreviewCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := activeCoupon()

	fx.couponRepo.EXPECT().FindByCode(ctx, "RAMADAN20").Return(coupon, nil)

	preview, err := fx.service.PreviewCoupon(ctx, "RAMADAN20", 1000)
	require.NoError(t, err)
	assert.Equal(t, 200.0, preview.DiscountAmount)
	assert.Equal(t, 800.0, preview.FinalAmount)
}

func TestCouponService_PreviewCoupon_BelowMinimum(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := activeCoupon()

	fx.couponRepo.EXPECT().FindByCode(ctx, "RAMADAN20").Return(coupon, nil)

	preview, err := fx.service.PreviewCoupon(ctx, "RAMADAN20", 400)
	require.Error(t, err)
	assert.Nil(t, preview)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponNotApplicable))
}

func TestCouponService_PreviewCoupon_Exhausted(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := activeCoupon()
	coupon.UsedCount = coupon.UsageLimit

	fx.couponRepo.EXPECT().FindByCode(ctx, "RAMADAN20").Return(coupon, nil)

	preview, err := fx.service.PreviewCoupon(ctx, "RAMADAN20", 1000)
	require.Error(t, err)
	assert.Nil(t, preview)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponExhausted))
}

func TestCouponService_PreviewCoupon_NotFound(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().
		FindByCode(ctx, "NOPE").
		Return(nil, repository.ErrCouponNotFound)

	preview, err := fx.service.PreviewCoupon(ctx, "NOPE", 1000)
	require.Error(t, err)
	assert.Nil(t, preview)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponNotFound))
}

func TestCouponService_UpdateCoupon_UsageLimitBelowConsumed(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := activeCoupon()
	newLimit := 5

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().NewCouponRepository().Return(mockCouponRepo)

			mockCouponRepo.EXPECT().
				FindByID(ctx, coupon.ID).
				Return(coupon, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		}).
		Return(errors.Wrap(domainerrors.ErrValidationFailed, "usage limit cannot drop below consumed count"))

	updated, err := fx.service.UpdateCoupon(ctx, coupon.ID, &usecase.UpdateCouponInput{UsageLimit: &newLimit})
	require.Error(t, err)
	assert.Nil(t, updated)
}

func TestCouponService_GenerateShareQR(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := activeCoupon()

	fx.couponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)
	fx.qrCodeService.EXPECT().
		GenerateCouponQR(coupon.ID, coupon.Code).
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.GenerateShareQR(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}
