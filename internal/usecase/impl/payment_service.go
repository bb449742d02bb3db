package impl

import (
	"context"
	"log/slog"

	deliverycontext "cookify/internal/delivery/context"
	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordPayment creates a pending payment attempt for the order's final amount.
func (srv *paymentService) RecordPayment(ctx context.Context, userID uuid.UUID, input *usecase.RecordPaymentInput) (*entity.Payment, error) {
	srv.log(ctx).Info("Recording payment", slog.Any("orderID", input.OrderID), slog.String("method", input.Method))

	method := entity.PaymentMethod(input.Method)
	if !method.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown payment method")
	}

	var newPayment *entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.NewOrderRepository().FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order for payment")
		}

		if order.UserID != userID {
			return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order does not belong to user")
		}

		// The attempt always covers the order's final amount; partial
		// payments are not supported.
		newPayment = &entity.Payment{
			OrderID:        order.ID,
			Amount:         order.FinalAmount,
			Method:         method,
			Status:         entity.PaymentPending,
			TransactionRef: input.TransactionRef,
		}

		return repoFactory.NewPaymentRepository().Create(ctx, newPayment)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to record payment", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment recording transaction")
	}

	return newPayment, nil
}

// UpdatePaymentStatus moves a payment attempt to a new status.
// Only pending attempts may complete or fail, and only completed attempts may
// be refunded.
func (srv *paymentService) UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, status string) (*entity.Payment, error) {
	srv.log(ctx).Info("Updating payment status", slog.Any("paymentID", paymentID), slog.String("status", status))

	targetStatus := entity.PaymentStatus(status)
	if !targetStatus.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPaymentStatus, "unknown payment status")
	}

	var updatedPayment *entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()

		payment, err := paymentRepo.FindByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return errors.Wrap(domainerrors.ErrPaymentNotFound, "payment not found")
			}

			return errors.Wrap(err, "failed to find payment")
		}

		if !canPaymentTransition(payment.Status, targetStatus) {
			return errors.Wrap(
				domainerrors.ErrInvalidPaymentStatus.WithDetails(string(payment.Status)+" -> "+string(targetStatus)),
				"invalid payment status transition",
			)
		}

		if err := paymentRepo.UpdateStatus(ctx, paymentID, targetStatus); err != nil {
			return errors.Wrap(err, "failed to update payment status")
		}

		payment.Status = targetStatus
		updatedPayment = payment

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update payment status", slog.Any("paymentID", paymentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment status transaction")
	}

	return updatedPayment, nil
}

// ListOrderPayments returns all attempts recorded for an order.
func (srv *paymentService) ListOrderPayments(ctx context.Context, actor usecase.OrderActor, orderID uuid.UUID) ([]*entity.Payment, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.UserID != actor.UserID && order.ChefID != actor.UserID && !actor.Roles.Contains(entity.RoleAdmin) {
		return nil, errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order does not belong to user")
	}

	payments, err := srv.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		srv.log(ctx).Error("Failed to list order payments", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list order payments")
	}

	return payments, nil
}

func canPaymentTransition(from, to entity.PaymentStatus) bool {
	switch from {
	case entity.PaymentPending:
		return to == entity.PaymentCompleted || to == entity.PaymentFailed
	case entity.PaymentCompleted:
		return to == entity.PaymentRefunded
	default:
		return false
	}
}
