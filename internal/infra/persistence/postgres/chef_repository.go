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

// chefRepository implements the repository.ChefRepository interface.
type chefRepository struct {
	db *gorm.DB
}

// NewChefRepository is the constructor for chefRepository.
func NewChefRepository(db *gorm.DB) repository.ChefRepository {
	return &chefRepository{
		db: db,
	}
}

// FindByUserID retrieves the chef profile for a given user ID.
func (repo *chefRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ChefProfile, error) {
	var profileM model.ChefProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChefNotFound
		}

		return nil, errors.Wrap(err, "failed to find chef profile")
	}

	return toChefProfileDomain(&profileM), nil
}

// Create persists a new chef profile.
func (repo *chefRepository) Create(ctx context.Context, profile *entity.ChefProfile) error {
	profileM := fromChefProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrChefAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("chef profile references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chef profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies the descriptive fields of an existing chef profile.
// The aggregate columns are deliberately excluded; they only move through
// UpdateRatingAggregates and AddDeliveredOrder.
func (repo *chefRepository) Update(ctx context.Context, profile *entity.ChefProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChefProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"kitchen_name": profile.KitchenName,
			"bio":          profile.Bio,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update chef profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChefNotFound
	}

	return nil
}

// UpdateRatingAggregates overwrites the denormalized rating columns.
func (repo *chefRepository) UpdateRatingAggregates(ctx context.Context, userID uuid.UUID, rating float64, totalRatings int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChefProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"rating":        rating,
			"total_ratings": totalRatings,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update chef rating aggregates")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChefNotFound
	}

	return nil
}

// AddDeliveredOrder increments total_orders and adds earnings to total_earnings.
func (repo *chefRepository) AddDeliveredOrder(ctx context.Context, userID uuid.UUID, earnings float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChefProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"total_orders":   gorm.Expr("total_orders + 1"),
			"total_earnings": gorm.Expr("total_earnings + ?", earnings),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record delivered order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChefNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toChefProfileDomain converts a GORM ChefProfileModel to a domain ChefProfile entity.
func toChefProfileDomain(data *model.ChefProfileModel) *entity.ChefProfile {
	if data == nil {
		return nil
	}

	return &entity.ChefProfile{
		UserID:        data.UserID,
		KitchenName:   data.KitchenName,
		Bio:           data.Bio,
		Rating:        data.Rating,
		TotalRatings:  data.TotalRatings,
		TotalOrders:   data.TotalOrders,
		TotalEarnings: data.TotalEarnings,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromChefProfileDomain converts a domain ChefProfile entity to a GORM ChefProfileModel.
func fromChefProfileDomain(data *entity.ChefProfile) *model.ChefProfileModel {
	if data == nil {
		return nil
	}

	return &model.ChefProfileModel{
		UserID:        data.UserID,
		KitchenName:   data.KitchenName,
		Bio:           data.Bio,
		Rating:        data.Rating,
		TotalRatings:  data.TotalRatings,
		TotalOrders:   data.TotalOrders,
		TotalEarnings: data.TotalEarnings,
	}
}
