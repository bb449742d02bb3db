package usecase

import (
	"context"
	"time"

	"cookify/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	RecipeID uuid.UUID `json:"recipe_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderInput represents the input for placing a new order.
// All items must belong to the same chef.
type PlaceOrderInput struct {
	AddressID           uuid.UUID        `json:"address_id" validate:"required"`
	CouponCode          string           `json:"coupon_code" validate:"omitempty,max=50"`
	SpecialInstructions string           `json:"special_instructions" validate:"max=1000"`
	Items               []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusInput represents a requested state transition.
type UpdateOrderStatusInput struct {
	Status            string     `json:"status" validate:"required"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
}

// OrderActor identifies who is requesting an order operation, so the service
// can check both ownership and role-based transition permissions.
type OrderActor struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// OrderUsecase defines the interface for the order lifecycle.
type OrderUsecase interface {
	// PlaceOrder prices the items, optionally redeems a coupon, and persists
	// the order with its line items in one transaction.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.MasterOrder, error)

	// GetOrder retrieves an order visible to the actor (owner, assigned chef, or admin).
	GetOrder(ctx context.Context, actor OrderActor, orderID uuid.UUID) (*entity.MasterOrder, error)

	// ListUserOrders returns the actor's own orders, newest first.
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.MasterOrder, error)

	// ListChefOrders returns orders assigned to the chef, newest first.
	ListChefOrders(ctx context.Context, chefID uuid.UUID) ([]*entity.MasterOrder, error)

	// UpdateOrderStatus performs a validated single-step state transition.
	// Entering delivered stamps actual_delivery and updates the chef's
	// order/earnings aggregates in the same transaction.
	UpdateOrderStatus(ctx context.Context, actor OrderActor, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.MasterOrder, error)

	// CancelOrder cancels a non-terminal order on behalf of the customer.
	CancelOrder(ctx context.Context, actor OrderActor, orderID uuid.UUID) (*entity.MasterOrder, error)
}
