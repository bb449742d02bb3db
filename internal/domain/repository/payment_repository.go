// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cookify/internal/domain/entity"
	"cookify/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment record is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the operations for payment attempt persistence.
type PaymentRepository interface {
	// Create persists a new payment attempt.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment attempt by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByOrder retrieves all payment attempts for an order, oldest first.
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)

	// UpdateStatus moves a payment attempt to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}
