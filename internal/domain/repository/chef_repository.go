// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cookify/internal/domain/entity"
	"cookify/internal/errors"

	"github.com/google/uuid"
)

// ErrChefNotFound is returned when a chef profile is not found.
var ErrChefNotFound = errors.New("chef profile not found")

// ChefRepository defines the operations for chef profile persistence,
// including the denormalized aggregate columns.
type ChefRepository interface {
	// FindByUserID retrieves the chef profile for a given user ID.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ChefProfile, error)

	// Create persists a new chef profile.
	Create(ctx context.Context, profile *entity.ChefProfile) error

	// Update modifies the descriptive fields of an existing chef profile.
	Update(ctx context.Context, profile *entity.ChefProfile) error

	// UpdateRatingAggregates overwrites the denormalized rating columns.
	// Must be called inside the same transaction as the rating insert that
	// changed them.
	UpdateRatingAggregates(ctx context.Context, userID uuid.UUID, rating float64, totalRatings int) error

	// AddDeliveredOrder increments total_orders and adds earnings to
	// total_earnings. Must run in the same transaction as the status change
	// to delivered.
	AddDeliveredOrder(ctx context.Context, userID uuid.UUID, earnings float64) error
}
