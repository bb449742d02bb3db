package postgres

import (
	"context"

	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	"cookify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// FindByID retrieves a recipe by its unique ID.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by ID")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindByIDs retrieves several recipes at once. Missing IDs are simply absent
// from the result; the caller decides whether that is an error.
func (repo *recipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by IDs")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// FindByChef retrieves all recipes owned by a chef, available or not.
func (repo *recipeRepository) FindByChef(ctx context.Context, chefID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("chef_id = ?", chefID).
		Order("created_at DESC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by chef")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// ListAvailable retrieves available recipes, optionally filtered by category.
func (repo *recipeRepository) ListAvailable(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	query := repo.db.WithContext(ctx).Where("is_available = ?", true)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.
		Order("rating DESC, created_at DESC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list available recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// Create persists a new recipe.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("recipe references unknown chef or category")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// Update modifies an existing recipe.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]any{
			"category_id":       recipe.CategoryID,
			"name":              recipe.Name,
			"description":       recipe.Description,
			"price":             recipe.Price,
			"image_url":         recipe.ImageURL,
			"prep_time_minutes": recipe.PrepTimeMinutes,
			"is_available":      recipe.IsAvailable,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("recipe references unknown category")
		}

		return errors.Wrap(result.Error, "failed to update recipe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// UpdateRatingAggregates overwrites the denormalized rating columns.
func (repo *recipeRepository) UpdateRatingAggregates(ctx context.Context, id uuid.UUID, rating float64, totalRatings int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":        rating,
			"total_ratings": totalRatings,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update recipe rating aggregates")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// Delete removes a recipe by its ID.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecipeModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("recipe is referenced by existing orders")
		}

		return errors.Wrap(result.Error, "failed to delete recipe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:              data.ID,
		ChefID:          data.ChefID,
		CategoryID:      data.CategoryID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		ImageURL:        data.ImageURL,
		PrepTimeMinutes: data.PrepTimeMinutes,
		IsAvailable:     data.IsAvailable,
		Rating:          data.Rating,
		TotalRatings:    data.TotalRatings,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:              data.ID,
		ChefID:          data.ChefID,
		CategoryID:      data.CategoryID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		ImageURL:        data.ImageURL,
		PrepTimeMinutes: data.PrepTimeMinutes,
		IsAvailable:     data.IsAvailable,
		Rating:          data.Rating,
		TotalRatings:    data.TotalRatings,
	}
}
