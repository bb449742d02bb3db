package service

import (
	"context"
)

// OrderEvent represents an order lifecycle change published for downstream
// consumers (analytics, chef dashboards, notification workers).
type OrderEvent struct {
	RequestID   string  `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string  `json:"order_id"`
	UserID      string  `json:"user_id"`
	ChefID      string  `json:"chef_id"`
	Status      string  `json:"status"`
	PrevStatus  string  `json:"prev_status,omitempty"`
	FinalAmount float64 `json:"final_amount"`
	OccurredAt  string  `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
