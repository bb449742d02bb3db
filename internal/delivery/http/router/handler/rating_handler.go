package handler

import (
	"log/slog"
	"net/http"

	"cookify/internal/delivery/http/response"
	"cookify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RatingHandler holds dependencies for rating handlers.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		uc:     uc,
		logger: logger,
	}
}

// RateOrder records post-delivery feedback for one of the customer's orders.
func (h *RatingHandler) RateOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input *usecase.CreateRatingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	rating, err := h.uc.RateOrder(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rating, "Rating recorded")
}

// ListRecipeRatings lists ratings for one recipe, newest first.
func (h *RatingHandler) ListRecipeRatings(c echo.Context) error {
	recipeID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	ratings, err := h.uc.ListRecipeRatings(c.Request().Context(), recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved")
}

// ListChefRatings lists ratings for one chef, newest first.
func (h *RatingHandler) ListChefRatings(c echo.Context) error {
	chefID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid chef ID")
	}

	ratings, err := h.uc.ListChefRatings(c.Request().Context(), chefID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved")
}
