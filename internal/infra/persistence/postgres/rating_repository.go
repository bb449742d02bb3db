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

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{
		db: db,
	}
}

// Create persists a new rating. The unique index on order_id backs the
// one-rating-per-order rule when two submissions race past ExistsForOrder.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRating
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating.WrapMessage("rating value outside the allowed range")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating references unknown order, user, chef or recipe")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// ExistsForOrder reports whether the order already has a rating.
func (repo *ratingRepository) ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check rating existence")
	}

	return count > 0, nil
}

// FindByRecipe retrieves all ratings for a recipe, newest first.
func (repo *ratingRepository) FindByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Rating, error) {
	var ratingModels []*model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ratings by recipe")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

// FindByChef retrieves all ratings for a chef, newest first.
func (repo *ratingRepository) FindByChef(ctx context.Context, chefID uuid.UUID) ([]*entity.Rating, error) {
	var ratingModels []*model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("chef_id = ?", chefID).
		Order("created_at DESC").
		Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ratings by chef")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

// --- Mapper Functions ---

// toRatingDomain converts a GORM RatingModel to a domain Rating entity.
func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:        data.ID,
		OrderID:   data.OrderID,
		UserID:    data.UserID,
		ChefID:    data.ChefID,
		RecipeID:  data.RecipeID,
		Value:     data.RatingValue,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

// fromRatingDomain converts a domain Rating entity to a GORM RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		UserID:      data.UserID,
		ChefID:      data.ChefID,
		RecipeID:    data.RecipeID,
		RatingValue: data.Value,
		Comment:     data.Comment,
	}
}
