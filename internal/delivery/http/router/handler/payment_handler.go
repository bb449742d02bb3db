package handler

import (
	"log/slog"
	"net/http"

	"cookify/internal/delivery/http/response"
	"cookify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordPayment registers a new payment attempt against an order.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input *usecase.RecordPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	payment, err := h.uc.RecordPayment(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded")
}

// updatePaymentStatusRequest is the request body for payment status changes.
type updatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdatePaymentStatus moves a payment attempt to a new status. Admin only,
// standing in for the payment-provider callback.
func (h *PaymentHandler) UpdatePaymentStatus(c echo.Context) error {
	paymentID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	var req *updatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	payment, err := h.uc.UpdatePaymentStatus(c.Request().Context(), paymentID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment status updated")
}

// ListOrderPayments lists the payment attempts of one order.
func (h *PaymentHandler) ListOrderPayments(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	payments, err := h.uc.ListOrderPayments(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved")
}
