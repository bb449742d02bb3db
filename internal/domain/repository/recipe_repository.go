// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cookify/internal/domain/entity"
	"cookify/internal/errors"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the operations for recipe persistence.
type RecipeRepository interface {
	// FindByID retrieves a recipe by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// FindByIDs retrieves several recipes at once, used when pricing an order.
	// Missing IDs are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Recipe, error)

	// FindByChef retrieves all recipes owned by a chef, available or not.
	FindByChef(ctx context.Context, chefID uuid.UUID) ([]*entity.Recipe, error)

	// ListAvailable retrieves available recipes, optionally filtered by category.
	ListAvailable(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Recipe, error)

	// Create persists a new recipe.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update modifies an existing recipe.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// UpdateRatingAggregates overwrites the denormalized rating columns.
	// Must run in the same transaction as the rating insert that changed them.
	UpdateRatingAggregates(ctx context.Context, id uuid.UUID, rating float64, totalRatings int) error

	// Delete removes a recipe by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
