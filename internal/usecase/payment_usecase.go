package usecase

import (
	"context"

	"cookify/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordPaymentInput represents the input for recording a payment attempt.
type RecordPaymentInput struct {
	OrderID        uuid.UUID `json:"order_id" validate:"required"`
	Method         string    `json:"method" validate:"required,oneof=cash card wallet"`
	TransactionRef string    `json:"transaction_ref" validate:"max=255"`
}

// PaymentUsecase defines the interface for payment attempt tracking.
type PaymentUsecase interface {
	// RecordPayment creates a pending payment attempt for the order's final amount.
	RecordPayment(ctx context.Context, userID uuid.UUID, input *RecordPaymentInput) (*entity.Payment, error)

	// UpdatePaymentStatus moves a payment attempt to a new status.
	UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, status string) (*entity.Payment, error)

	// ListOrderPayments returns all attempts recorded for an order.
	ListOrderPayments(ctx context.Context, actor OrderActor, orderID uuid.UUID) ([]*entity.Payment, error)
}
