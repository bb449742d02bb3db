package handler

import (
	"log/slog"
	"net/http"

	"cookify/internal/delivery/http/response"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for category and recipe handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCategories returns the active recipe taxonomy.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved")
}

// CreateCategory adds a new taxonomy entry. Admin only, enforced by the router.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var input *usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// BrowseRecipes lists available recipes, optionally filtered by category.
func (h *CatalogHandler) BrowseRecipes(c echo.Context) error {
	var categoryID *uuid.UUID
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category_id query parameter")
		}
		categoryID = &id
	}

	recipes, err := h.uc.BrowseRecipes(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "Recipes retrieved")
}

// GetRecipe returns a single recipe by ID.
func (h *CatalogHandler) GetRecipe(c echo.Context) error {
	recipeID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe retrieved")
}

// ListMyRecipes lists the authenticated chef's recipes, available or not.
func (h *CatalogHandler) ListMyRecipes(c echo.Context) error {
	chefID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	recipes, err := h.uc.ListChefRecipes(c.Request().Context(), chefID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "Recipes retrieved")
}

// CreateRecipe adds a new recipe owned by the authenticated chef.
func (h *CatalogHandler) CreateRecipe(c echo.Context) error {
	chefID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input *usecase.CreateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), chefID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, recipe, "Recipe created")
}

// UpdateRecipe modifies a recipe owned by the authenticated chef.
func (h *CatalogHandler) UpdateRecipe(c echo.Context) error {
	chefID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	recipeID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	var input *usecase.UpdateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	recipe, err := h.uc.UpdateRecipe(c.Request().Context(), chefID, recipeID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe updated")
}

// DeleteRecipe removes a recipe owned by the authenticated chef.
func (h *CatalogHandler) DeleteRecipe(c echo.Context) error {
	chefID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	recipeID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	if err := h.uc.DeleteRecipe(c.Request().Context(), chefID, recipeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Recipe deleted"}, "Recipe deleted")
}
