package usecase

import (
	"context"

	"cookify/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRatingInput represents the input for rating a delivered order.
type CreateRatingInput struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	Value   int       `json:"value" validate:"required"`
	Comment string    `json:"comment" validate:"max=1000"`
}

// RatingUsecase defines the interface for post-delivery feedback.
type RatingUsecase interface {
	// RateOrder validates and stores the rating, then updates the recipe and
	// chef aggregates inside the same transaction.
	RateOrder(ctx context.Context, userID uuid.UUID, input *CreateRatingInput) (*entity.Rating, error)

	// ListRecipeRatings returns all ratings of a recipe, newest first.
	ListRecipeRatings(ctx context.Context, recipeID uuid.UUID) ([]*entity.Rating, error)

	// ListChefRatings returns all ratings of a chef, newest first.
	ListChefRatings(ctx context.Context, chefID uuid.UUID) ([]*entity.Rating, error)
}
