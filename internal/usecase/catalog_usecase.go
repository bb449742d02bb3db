package usecase

import (
	"context"

	"cookify/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput represents the input for adding a taxonomy entry.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// CreateRecipeInput represents the input for a chef listing a new dish.
type CreateRecipeInput struct {
	CategoryID      uuid.UUID `json:"category_id" validate:"required"`
	Name            string    `json:"name" validate:"required,max=150"`
	Description     string    `json:"description" validate:"max=2000"`
	Price           float64   `json:"price" validate:"required,gt=0"`
	ImageURL        string    `json:"image_url" validate:"omitempty,url"`
	PrepTimeMinutes int       `json:"prep_time_minutes" validate:"gte=0"`
}

// UpdateRecipeInput represents a partial update to an existing recipe.
type UpdateRecipeInput struct {
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	Name            *string    `json:"name,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	PrepTimeMinutes *int       `json:"prep_time_minutes,omitempty"`
	IsAvailable     *bool      `json:"is_available,omitempty"`
}

// CatalogUsecase defines the interface for browsing and managing the recipe catalog.
type CatalogUsecase interface {
	// ListCategories returns the active taxonomy for browsing.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory adds a taxonomy entry (admin only, enforced at delivery).
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// BrowseRecipes returns available recipes, optionally restricted to a category.
	BrowseRecipes(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Recipe, error)

	// GetRecipe retrieves a single recipe.
	GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// ListChefRecipes returns every recipe of the chef, available or not.
	ListChefRecipes(ctx context.Context, chefID uuid.UUID) ([]*entity.Recipe, error)

	// CreateRecipe lists a new dish for the chef.
	CreateRecipe(ctx context.Context, chefID uuid.UUID, input *CreateRecipeInput) (*entity.Recipe, error)

	// UpdateRecipe applies a partial update after verifying ownership.
	UpdateRecipe(ctx context.Context, chefID, recipeID uuid.UUID, input *UpdateRecipeInput) (*entity.Recipe, error)

	// DeleteRecipe removes a dish after verifying ownership.
	DeleteRecipe(ctx context.Context, chefID, recipeID uuid.UUID) error
}
