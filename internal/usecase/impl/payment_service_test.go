package impl

import (
	"context"
	"testing"

	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	mockRepo "cookify/internal/mocks/repository"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPaymentService(t *testing.T) (usecase.PaymentUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockOrderRepository, *mockRepo.MockPaymentRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)

	service := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		OrderRepo:   orderRepo,
		PaymentRepo: paymentRepo,
		Logger:      newDiscardLogger(),
	})

	return service, txManager, orderRepo, paymentRepo
}

func TestPaymentService_RecordPayment_Success(t *testing.T) {
	service, txManager, _, _ := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	order := &entity.MasterOrder{
		ID:          orderID,
		UserID:      userID,
		ChefID:      uuid.New(),
		Status:      entity.StatusPending,
		FinalAmount: 720,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, orderID).
				Return(order, nil)

			mockPaymentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Payment")).
				Run(func(ctx context.Context, payment *entity.Payment) {
					payment.ID = uuid.New()
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	payment, err := service.RecordPayment(ctx, userID, &usecase.RecordPaymentInput{
		OrderID: orderID,
		Method:  "card",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, payment.Status)
	assert.Equal(t, 720.0, payment.Amount)
	assert.Equal(t, entity.PaymentMethodCard, payment.Method)
}

func TestPaymentService_RecordPayment_UnknownMethod(t *testing.T) {
	service, _, _, _ := createTestPaymentService(t)

	payment, err := service.RecordPayment(context.Background(), uuid.New(), &usecase.RecordPaymentInput{
		OrderID: uuid.New(),
		Method:  "crypto",
	})
	require.Error(t, err)
	assert.Nil(t, payment)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentService_UpdatePaymentStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.PaymentStatus
		to      string
		allowed bool
	}{
		{name: "pending to completed", from: entity.PaymentPending, to: "completed", allowed: true},
		{name: "pending to failed", from: entity.PaymentPending, to: "failed", allowed: true},
		{name: "completed to refunded", from: entity.PaymentCompleted, to: "refunded", allowed: true},
		{name: "pending to refunded", from: entity.PaymentPending, to: "refunded", allowed: false},
		{name: "failed is terminal", from: entity.PaymentFailed, to: "completed", allowed: false},
		{name: "refunded is terminal", from: entity.PaymentRefunded, to: "completed", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, txManager, _, _ := createTestPaymentService(t)

			ctx := context.Background()
			paymentID := uuid.New()
			payment := &entity.Payment{ID: paymentID, OrderID: uuid.New(), Status: tt.from}

			var txErr error
			if !tt.allowed {
				txErr = errors.Wrap(domainerrors.ErrInvalidPaymentStatus, "invalid payment status transition")
			}

			txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

					mockFactory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

					mockPaymentRepo.EXPECT().
						FindByID(ctx, paymentID).
						Return(payment, nil)

					if tt.allowed {
						mockPaymentRepo.EXPECT().
							UpdateStatus(ctx, paymentID, entity.PaymentStatus(tt.to)).
							Return(nil)
					}

					err := fn(mockFactory)
					if tt.allowed {
						require.NoError(t, err)
					} else {
						assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentStatus))
					}
				}).
				Return(txErr)

			updated, err := service.UpdatePaymentStatus(ctx, paymentID, tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, entity.PaymentStatus(tt.to), updated.Status)
			} else {
				require.Error(t, err)
				assert.Nil(t, updated)
			}
		})
	}
}

func TestPaymentService_ListOrderPayments_StrangerDenied(t *testing.T) {
	service, _, orderRepo, _ := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.MasterOrder{ID: orderID, UserID: uuid.New(), ChefID: uuid.New()}, nil)

	payments, err := service.ListOrderPayments(ctx, customerActor(uuid.New()), orderID)
	require.Error(t, err)
	assert.Nil(t, payments)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
}

func TestPaymentService_ListOrderPayments_OwnerAllowed(t *testing.T) {
	service, _, orderRepo, paymentRepo := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.MasterOrder{ID: orderID, UserID: userID, ChefID: uuid.New()}, nil)

	paymentRepo.EXPECT().
		FindByOrder(ctx, orderID).
		Return([]*entity.Payment{
			{ID: uuid.New(), OrderID: orderID, Status: entity.PaymentFailed},
			{ID: uuid.New(), OrderID: orderID, Status: entity.PaymentCompleted},
		}, nil)

	payments, err := service.ListOrderPayments(ctx, customerActor(userID), orderID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}
