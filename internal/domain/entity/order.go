// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MasterOrder is the aggregate root for one customer purchase transaction.
// The monetary invariant FinalAmount = TotalAmount - DiscountAmount is not
// expressed in the schema; the order service guarantees it on every write.
type MasterOrder struct {
	ID                  uuid.UUID   // The Global Unique Identifier (GUID) for the order.
	UserID              uuid.UUID   // The customer that placed the order.
	ChefID              uuid.UUID   // The chef fulfilling the order.
	AddressID           uuid.UUID   // The delivery address chosen at placement time.
	CouponID            *uuid.UUID  // The redeemed coupon, if any.
	Status              OrderStatus // Current state in the order state machine.
	TotalAmount         float64     // Sum of item total prices before discount.
	DiscountAmount      float64     // Discount granted by the coupon; zero without one.
	FinalAmount         float64     // TotalAmount - DiscountAmount.
	SpecialInstructions string      // Free-form note from the customer to the chef.
	EstimatedDelivery   *time.Time  // Chef's delivery estimate, set on acceptance.
	ActualDelivery      *time.Time  // Stamped exactly when the order enters delivered.
	Items               []*OrderItem
	CreatedAt           time.Time // Timestamp of when this order was placed.
	UpdatedAt           time.Time // Timestamp of the last modification.
}

// OrderItem is one line of a MasterOrder.
// TotalPrice = Quantity * UnitPrice is maintained by the order service;
// UnitPrice snapshots the recipe price at placement time.
type OrderItem struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the line item.
	OrderID    uuid.UUID // The order this line belongs to.
	RecipeID   uuid.UUID // The recipe being ordered.
	Quantity   int       // Number of servings.
	UnitPrice  float64   // Recipe price captured when the order was placed.
	TotalPrice float64   // Quantity * UnitPrice.
}

// Subtotal sums the line totals of the order.
func (o *MasterOrder) Subtotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.TotalPrice
	}

	return sum
}
