package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "cookify/internal/delivery/context"
	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface. Besides storing the
// rating it maintains the denormalized averages on recipes and chef profiles,
// updated incrementally inside the same transaction as the insert.
type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RateOrder validates and stores the rating, then folds it into the recipe
// and chef aggregates.
func (srv *ratingService) RateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateRatingInput) (*entity.Rating, error) {
	srv.log(ctx).Info("Rating order", slog.Any("orderID", input.OrderID), slog.Int("value", input.Value))

	if !entity.IsValidValue(input.Value) {
		return nil, errors.Wrap(domainerrors.ErrInvalidRating, "rating value out of range")
	}

	var newRating *entity.Rating
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := srv.loadRatableOrder(ctx, repoFactory, userID, input.OrderID)
		if err != nil {
			return err
		}

		ratingRepo := repoFactory.NewRatingRepository()

		alreadyRated, err := ratingRepo.ExistsForOrder(ctx, input.OrderID)
		if err != nil {
			return errors.Wrap(err, "failed to check for existing rating")
		}
		if alreadyRated {
			return errors.Wrap(domainerrors.ErrDuplicateRating, "order already rated")
		}

		// The rating is attributed to the order's first line item; mixed
		// orders share one rating across the whole purchase.
		recipeID := order.Items[0].RecipeID

		newRating = &entity.Rating{
			OrderID:  order.ID,
			UserID:   userID,
			ChefID:   order.ChefID,
			RecipeID: recipeID,
			Value:    input.Value,
			Comment:  input.Comment,
		}

		if err := ratingRepo.Create(ctx, newRating); err != nil {
			if errors.Is(err, repository.ErrDuplicateRating) {
				return errors.Wrap(domainerrors.ErrDuplicateRating, "order already rated")
			}

			return errors.Wrap(err, "failed to create rating")
		}

		if err := srv.updateRecipeAggregates(ctx, repoFactory, recipeID, input.Value); err != nil {
			return err
		}

		return srv.updateChefAggregates(ctx, repoFactory, order.ChefID, input.Value)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute rating transaction", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute rating transaction")
	}

	srv.log(ctx).Debug("Order rated", slog.Any("ratingID", newRating.ID))

	return newRating, nil
}

// loadRatableOrder fetches the order and verifies the customer owns it and
// that it has been delivered.
func (srv *ratingService) loadRatableOrder(ctx context.Context, repoFactory repository.RepositoryFactory, userID, orderID uuid.UUID) (*entity.MasterOrder, error) {
	order, err := repoFactory.NewOrderRepository().FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order for rating")
	}

	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order does not belong to user")
	}

	if order.Status != entity.StatusDelivered {
		return nil, errors.Wrap(domainerrors.ErrOrderNotDelivered, "only delivered orders can be rated")
	}

	if len(order.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "order has no line items")
	}

	return order, nil
}

func (srv *ratingService) updateRecipeAggregates(ctx context.Context, repoFactory repository.RepositoryFactory, recipeID uuid.UUID, value int) error {
	recipeRepo := repoFactory.NewRecipeRepository()

	recipe, err := recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.Wrap(err, "failed to find recipe for aggregate update")
	}

	newAverage, newTotal := foldIntoAverage(recipe.Rating, recipe.TotalRatings, value)

	if err := recipeRepo.UpdateRatingAggregates(ctx, recipeID, newAverage, newTotal); err != nil {
		return errors.Wrap(err, "failed to update recipe rating aggregates")
	}

	return nil
}

func (srv *ratingService) updateChefAggregates(ctx context.Context, repoFactory repository.RepositoryFactory, chefID uuid.UUID, value int) error {
	chefRepo := repoFactory.NewChefRepository()

	profile, err := chefRepo.FindByUserID(ctx, chefID)
	if err != nil {
		return errors.Wrap(err, "failed to find chef profile for aggregate update")
	}

	newAverage, newTotal := foldIntoAverage(profile.Rating, profile.TotalRatings, value)

	if err := chefRepo.UpdateRatingAggregates(ctx, chefID, newAverage, newTotal); err != nil {
		return errors.Wrap(err, "failed to update chef rating aggregates")
	}

	return nil
}

// ListRecipeRatings returns all ratings of a recipe, newest first.
func (srv *ratingService) ListRecipeRatings(ctx context.Context, recipeID uuid.UUID) ([]*entity.Rating, error) {
	// Single query operation - use direct repository instance
	ratings, err := srv.ratingRepo.FindByRecipe(ctx, recipeID)
	if err != nil {
		srv.log(ctx).Error("Failed to list recipe ratings", slog.Any("recipeID", recipeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recipe ratings")
	}

	return ratings, nil
}

// ListChefRatings returns all ratings of a chef, newest first.
func (srv *ratingService) ListChefRatings(ctx context.Context, chefID uuid.UUID) ([]*entity.Rating, error) {
	ratings, err := srv.ratingRepo.FindByChef(ctx, chefID)
	if err != nil {
		srv.log(ctx).Error("Failed to list chef ratings", slog.Any("chefID", chefID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list chef ratings")
	}

	return ratings, nil
}

// foldIntoAverage computes the running average after adding one more value,
// rounded to two decimal places.
func foldIntoAverage(average float64, count, value int) (float64, int) {
	newCount := count + 1
	newAverage := (average*float64(count) + float64(value)) / float64(newCount)

	return math.Round(newAverage*100) / 100, newCount
}
