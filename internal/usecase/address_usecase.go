package usecase

import (
	"context"

	"cookify/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAddressInput represents the input for adding a delivery address.
type AddAddressInput struct {
	Label      string `json:"label" validate:"required,max=100"`
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"max=100"`
	PostalCode string `json:"postal_code" validate:"max=20"`
	Phone      string `json:"phone" validate:"omitempty,min=7,max=20"`
	IsDefault  bool   `json:"is_default"`
}

// UpdateAddressInput represents a partial update to an existing address.
type UpdateAddressInput struct {
	Label      *string `json:"label,omitempty"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

// AddressUsecase defines the interface for delivery address management.
type AddressUsecase interface {
	// GetAddresses returns all addresses of the user, default first.
	GetAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// AddAddress creates a new address. The first address of a user becomes
	// the default automatically.
	AddAddress(ctx context.Context, userID uuid.UUID, input *AddAddressInput) (*entity.Address, error)

	// UpdateAddress applies a partial update after verifying ownership.
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)

	// SetDefaultAddress makes the address the single default for the user
	// using a transactional check-and-set.
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error

	// DeleteAddress removes an address after verifying ownership.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
