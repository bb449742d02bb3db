// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cookify/internal/domain/entity"
	"cookify/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for rating persistence.
var (
	// ErrRatingNotFound is returned when a rating is not found.
	ErrRatingNotFound = errors.New("rating not found")
	// ErrDuplicateRating is returned when an order already has a rating.
	ErrDuplicateRating = errors.New("order already rated")
)

// RatingRepository defines the operations for rating persistence.
type RatingRepository interface {
	// Create persists a new rating. The rating_value CHECK constraint is the
	// last line of defence; the service validates the range first.
	Create(ctx context.Context, rating *entity.Rating) error

	// ExistsForOrder reports whether the order already has a rating.
	ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)

	// FindByRecipe retrieves all ratings for a recipe, newest first.
	FindByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Rating, error)

	// FindByChef retrieves all ratings for a chef, newest first.
	FindByChef(ctx context.Context, chefID uuid.UUID) ([]*entity.Rating, error)
}
