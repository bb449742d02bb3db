package impl

import (
	"context"
	"testing"

	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	mockRepo "cookify/internal/mocks/repository"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRatingService(t *testing.T) (usecase.RatingUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockRatingRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)

	service := NewRatingService(RatingServiceParams{
		TxManager:  txManager,
		RatingRepo: ratingRepo,
		Logger:     newDiscardLogger(),
	})

	return service, txManager, ratingRepo
}

func deliveredOrder(userID, chefID, recipeID uuid.UUID) *entity.MasterOrder {
	return &entity.MasterOrder{
		ID:     uuid.New(),
		UserID: userID,
		ChefID: chefID,
		Status: entity.StatusDelivered,
		Items: []*entity.OrderItem{
			{RecipeID: recipeID, Quantity: 2, UnitPrice: 450, TotalPrice: 900},
		},
	}
}

func TestRatingService_RateOrder_Success(t *testing.T) {
	service, txManager, _ := createTestRatingService(t)

	ctx := context.Background()
	userID := uuid.New()
	chefID := uuid.New()
	recipeID := uuid.New()
	order := deliveredOrder(userID, chefID, recipeID)

	input := &usecase.CreateRatingInput{
		OrderID: order.ID,
		Value:   5,
		Comment: "Amazing biryani!",
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockRatingRepo := mockRepo.NewMockRatingRepository(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)
			mockChefRepo := mockRepo.NewMockChefRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewRatingRepository().Return(mockRatingRepo)
			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)
			mockFactory.EXPECT().NewChefRepository().Return(mockChefRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, order.ID).
				Return(order, nil)

			mockRatingRepo.EXPECT().
				ExistsForOrder(ctx, order.ID).
				Return(false, nil)

			mockRatingRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Rating")).
				Run(func(ctx context.Context, rating *entity.Rating) {
					rating.ID = uuid.New()
				}).
				Return(nil)

			// 4.5 average over 2 ratings plus a 5 becomes 4.67 over 3.
			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(&entity.Recipe{ID: recipeID, ChefID: chefID, Rating: 4.5, TotalRatings: 2}, nil)

			mockRecipeRepo.EXPECT().
				UpdateRatingAggregates(ctx, recipeID, 4.67, 3).
				Return(nil)

			mockChefRepo.EXPECT().
				FindByUserID(ctx, chefID).
				Return(&entity.ChefProfile{UserID: chefID, Rating: 4.0, TotalRatings: 9}, nil)

			mockChefRepo.EXPECT().
				UpdateRatingAggregates(ctx, chefID, 4.1, 10).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	rating, err := service.RateOrder(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, 5, rating.Value)
	assert.Equal(t, chefID, rating.ChefID)
	assert.Equal(t, recipeID, rating.RecipeID)
}

func TestRatingService_RateOrder_ValueOutOfRange(t *testing.T) {
	service, _, _ := createTestRatingService(t)

	for _, value := range []int{0, 6, -1} {
		rating, err := service.RateOrder(context.Background(), uuid.New(), &usecase.CreateRatingInput{
			OrderID: uuid.New(),
			Value:   value,
		})
		require.Error(t, err)
		assert.Nil(t, rating)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
	}
}

func TestRatingService_RateOrder_NotDelivered(t *testing.T) {
	service, txManager, _ := createTestRatingService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := deliveredOrder(userID, uuid.New(), uuid.New())
	order.Status = entity.StatusCooking

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, order.ID).
				Return(order, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrOrderNotDelivered))
		}).
		Return(errors.Wrap(domainerrors.ErrOrderNotDelivered, "only delivered orders can be rated"))

	rating, err := service.RateOrder(ctx, userID, &usecase.CreateRatingInput{OrderID: order.ID, Value: 4})
	require.Error(t, err)
	assert.Nil(t, rating)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotDelivered))
}

func TestRatingService_RateOrder_Duplicate(t *testing.T) {
	service, txManager, _ := createTestRatingService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := deliveredOrder(userID, uuid.New(), uuid.New())

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockRatingRepo := mockRepo.NewMockRatingRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewRatingRepository().Return(mockRatingRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, order.ID).
				Return(order, nil)

			mockRatingRepo.EXPECT().
				ExistsForOrder(ctx, order.ID).
				Return(true, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRating))
		}).
		Return(errors.Wrap(domainerrors.ErrDuplicateRating, "order already rated"))

	rating, err := service.RateOrder(ctx, userID, &usecase.CreateRatingInput{OrderID: order.ID, Value: 4})
	require.Error(t, err)
	assert.Nil(t, rating)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRating))
}

func TestRatingService_RateOrder_NotOwner(t *testing.T) {
	service, txManager, _ := createTestRatingService(t)

	ctx := context.Background()
	order := deliveredOrder(uuid.New(), uuid.New(), uuid.New())
	strangerID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, order.ID).
				Return(order, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
		}).
		Return(errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order does not belong to user"))

	rating, err := service.RateOrder(ctx, strangerID, &usecase.CreateRatingInput{OrderID: order.ID, Value: 4})
	require.Error(t, err)
	assert.Nil(t, rating)
}

func TestRatingService_ListRecipeRatings(t *testing.T) {
	service, _, ratingRepo := createTestRatingService(t)

	ctx := context.Background()
	recipeID := uuid.New()
	expected := []*entity.Rating{
		{ID: uuid.New(), RecipeID: recipeID, Value: 5},
		{ID: uuid.New(), RecipeID: recipeID, Value: 4},
	}

	ratingRepo.EXPECT().FindByRecipe(ctx, recipeID).Return(expected, nil)

	ratings, err := service.ListRecipeRatings(ctx, recipeID)
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
}

func TestFoldIntoAverage(t *testing.T) {
	tests := []struct {
		name        string
		average     float64
		count       int
		value       int
		wantAverage float64
		wantCount   int
	}{
		{name: "first rating", average: 0, count: 0, value: 4, wantAverage: 4, wantCount: 1},
		{name: "rounds to two decimals", average: 4.5, count: 2, value: 5, wantAverage: 4.67, wantCount: 3},
		{name: "pulls average down", average: 5, count: 4, value: 1, wantAverage: 4.2, wantCount: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAverage, gotCount := foldIntoAverage(tt.average, tt.count, tt.value)
			assert.InDelta(t, tt.wantAverage, gotAverage, 0.001)
			assert.Equal(t, tt.wantCount, gotCount)
		})
	}
}
