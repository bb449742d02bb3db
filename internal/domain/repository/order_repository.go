// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cookify/internal/domain/entity"
	"cookify/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
// An order and its line items always travel together: Create persists both,
// and every Find preloads the items.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.MasterOrder) error

	// FindByID retrieves an order with its items by unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MasterOrder, error)

	// FindByUser retrieves all orders placed by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MasterOrder, error)

	// FindByChef retrieves all orders assigned to a chef, newest first.
	FindByChef(ctx context.Context, chefID uuid.UUID) ([]*entity.MasterOrder, error)

	// Update persists status and timestamp changes of an existing order.
	Update(ctx context.Context, order *entity.MasterOrder) error

	// CountByUser returns how many orders reference the user. Used to enforce
	// the deletion policy: users with order history cannot be deleted.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
