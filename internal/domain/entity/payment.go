// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod enumerates how a payment attempt is settled.
type PaymentMethod string

const (
	// PaymentMethodCash is cash on delivery.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodCard is a card payment collected online.
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodWallet is a mobile-wallet payment.
	PaymentMethodWallet PaymentMethod = "wallet"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodWallet:
		return true
	default:
		return false
	}
}

// PaymentStatus is the state of one payment attempt.
// It is deliberately independent of the order status: a cancelled order can
// still carry a completed payment waiting for a refund.
type PaymentStatus string

const (
	// PaymentPending is the initial state of every attempt.
	PaymentPending PaymentStatus = "pending"
	// PaymentCompleted means funds were captured.
	PaymentCompleted PaymentStatus = "completed"
	// PaymentFailed means the attempt did not go through; a new attempt may follow.
	PaymentFailed PaymentStatus = "failed"
	// PaymentRefunded means captured funds were returned.
	PaymentRefunded PaymentStatus = "refunded"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

// Payment records one payment attempt against an order.
// An order can accumulate several attempts (e.g. a failed card charge followed
// by a successful one).
type Payment struct {
	ID             uuid.UUID     // The Global Unique Identifier (GUID) for the payment.
	OrderID        uuid.UUID     // The order this attempt pays for.
	Amount         float64       // Amount of this attempt, normally the order's final amount.
	Method         PaymentMethod // How the attempt is settled.
	Status         PaymentStatus // Current state of this attempt.
	TransactionRef string        // Reference handed back by the payment provider, if any.
	CreatedAt      time.Time     // Timestamp of when this attempt was recorded.
	UpdatedAt      time.Time     // Timestamp of the last status change.
}
