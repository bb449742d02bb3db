// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cookify/internal/domain/entity"
	"cookify/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// Create persists a new address for a user.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByUser retrieves all addresses for a user, default first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// FindDefaultByUser retrieves the default address for a user.
	// Returns ErrAddressNotFound if no default address exists.
	FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error)

	// Update modifies an existing address record.
	Update(ctx context.Context, address *entity.Address) error

	// ClearDefault unsets the is_default flag on every address of the user.
	// Used as the first half of the check-and-set that keeps at most one
	// default address per user.
	ClearDefault(ctx context.Context, userID uuid.UUID) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByUser returns the total count of addresses for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
