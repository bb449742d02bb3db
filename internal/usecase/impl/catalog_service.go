package impl

import (
	"context"
	"log/slog"

	deliverycontext "cookify/internal/delivery/context"
	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	recipeRepo   repository.RecipeRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	RecipeRepo   repository.RecipeRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		recipeRepo:   params.RecipeRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns the active taxonomy for browsing.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	// Single query operation - use direct repository instance
	categories, err := srv.categoryRepo.ListActive(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory adds a new taxonomy entry.
func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	srv.log(ctx).Info("Creating category", slog.String("name", input.Name))

	newCategory := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}

	if err := srv.categoryRepo.Create(ctx, newCategory); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	return newCategory, nil
}

// BrowseRecipes returns available recipes, optionally restricted to a category.
func (srv *catalogService) BrowseRecipes(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Recipe, error) {
	if categoryID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *categoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "failed to browse recipes")
			}

			return nil, errors.Wrap(err, "failed to find category")
		}
	}

	recipes, err := srv.recipeRepo.ListAvailable(ctx, categoryID)
	if err != nil {
		srv.log(ctx).Error("Failed to browse recipes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to browse recipes")
	}

	return recipes, nil
}

// GetRecipe retrieves a single recipe.
func (srv *catalogService) GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "failed to get recipe")
		}

		return nil, errors.Wrap(err, "failed to get recipe")
	}

	return recipe, nil
}

// ListChefRecipes returns every recipe of the chef, available or not.
func (srv *catalogService) ListChefRecipes(ctx context.Context, chefID uuid.UUID) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindByChef(ctx, chefID)
	if err != nil {
		srv.log(ctx).Error("Failed to list chef recipes", slog.Any("chefID", chefID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list chef recipes")
	}

	return recipes, nil
}

// CreateRecipe lists a new dish for the chef.
func (srv *catalogService) CreateRecipe(ctx context.Context, chefID uuid.UUID, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	srv.log(ctx).Info("Creating recipe", slog.Any("chefID", chefID), slog.String("name", input.Name))

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "failed to create recipe")
		}

		return nil, errors.Wrap(err, "failed to find category for recipe")
	}

	newRecipe := &entity.Recipe{
		ChefID:          chefID,
		CategoryID:      input.CategoryID,
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		ImageURL:        input.ImageURL,
		PrepTimeMinutes: input.PrepTimeMinutes,
		IsAvailable:     true,
	}

	if err := srv.recipeRepo.Create(ctx, newRecipe); err != nil {
		srv.log(ctx).Error("Failed to create recipe", slog.Any("chefID", chefID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create recipe")
	}

	return newRecipe, nil
}

// UpdateRecipe applies a partial update after verifying ownership.
func (srv *catalogService) UpdateRecipe(ctx context.Context, chefID, recipeID uuid.UUID, input *usecase.UpdateRecipeInput) (*entity.Recipe, error) {
	srv.log(ctx).Info("Updating recipe", slog.Any("chefID", chefID), slog.Any("recipeID", recipeID))

	var updatedRecipe *entity.Recipe
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.NewRecipeRepository()

		recipe, err := srv.loadOwnedRecipe(ctx, recipeRepo, chefID, recipeID)
		if err != nil {
			return err
		}

		applyRecipeUpdate(recipe, input)

		if err := recipeRepo.Update(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to update recipe")
		}
		updatedRecipe = recipe

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update recipe", slog.Any("recipeID", recipeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute recipe update transaction")
	}

	return updatedRecipe, nil
}

// DeleteRecipe removes a dish after verifying ownership.
func (srv *catalogService) DeleteRecipe(ctx context.Context, chefID, recipeID uuid.UUID) error {
	srv.log(ctx).Info("Deleting recipe", slog.Any("chefID", chefID), slog.Any("recipeID", recipeID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.NewRecipeRepository()

		if _, err := srv.loadOwnedRecipe(ctx, recipeRepo, chefID, recipeID); err != nil {
			return err
		}

		return recipeRepo.Delete(ctx, recipeID)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete recipe", slog.Any("recipeID", recipeID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute recipe deletion transaction")
	}

	return nil
}

// loadOwnedRecipe fetches the recipe and verifies it belongs to the chef.
func (srv *catalogService) loadOwnedRecipe(ctx context.Context, recipeRepo repository.RecipeRepository, chefID, recipeID uuid.UUID) (*entity.Recipe, error) {
	recipe, err := recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe not found")
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	if recipe.ChefID != chefID {
		srv.log(ctx).Warn("Recipe ownership violation", slog.Any("chefID", chefID), slog.Any("recipeID", recipeID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "recipe does not belong to chef")
	}

	return recipe, nil
}

func applyRecipeUpdate(recipe *entity.Recipe, input *usecase.UpdateRecipeInput) {
	if input.CategoryID != nil {
		recipe.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		recipe.Name = *input.Name
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.Price != nil {
		recipe.Price = *input.Price
	}
	if input.ImageURL != nil {
		recipe.ImageURL = *input.ImageURL
	}
	if input.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = *input.PrepTimeMinutes
	}
	if input.IsAvailable != nil {
		recipe.IsAvailable = *input.IsAvailable
	}
}
