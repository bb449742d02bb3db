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

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
	recipeRepo   *mockRepo.MockRecipeRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		RecipeRepo:   recipeRepo,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      service,
		txManager:    txManager,
		categoryRepo: categoryRepo,
		recipeRepo:   recipeRepo,
	}
}

func TestCatalogService_ListCategories(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Category{
		{ID: uuid.New(), Name: "Biryani", IsActive: true},
		{ID: uuid.New(), Name: "Desserts", IsActive: true},
	}

	fx.categoryRepo.EXPECT().ListActive(ctx).Return(expected, nil)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Biryani", categories[0].Name)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateCategoryInput{
		Name:        "Street Food",
		Description: "Snacks and quick bites",
	}

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = uuid.New()
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.Name, category.Name)
	assert.True(t, category.IsActive)
}

func TestCatalogService_BrowseRecipes_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	recipes, err := fx.service.BrowseRecipes(ctx, &categoryID)
	require.Error(t, err)
	assert.Nil(t, recipes)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCatalogService_CreateRecipe_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	chefID := uuid.New()
	categoryID := uuid.New()
	input := &usecase.CreateRecipeInput{
		CategoryID:      categoryID,
		Name:            "Chicken Biryani",
		Description:     "Slow-cooked with saffron",
		Price:           450,
		PrepTimeMinutes: 90,
	}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Biryani"}, nil)

	fx.recipeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recipe")).
		Run(func(ctx context.Context, recipe *entity.Recipe) {
			recipe.ID = uuid.New()
		}).
		Return(nil)

	recipe, err := fx.service.CreateRecipe(ctx, chefID, input)
	require.NoError(t, err)
	assert.Equal(t, chefID, recipe.ChefID)
	assert.Equal(t, input.Price, recipe.Price)
	assert.True(t, recipe.IsAvailable)
}

func TestCatalogService_UpdateRecipe_OwnershipViolation(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	chefID := uuid.New()
	recipeID := uuid.New()
	otherChefID := uuid.New()
	newPrice := 500.0

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(&entity.Recipe{ID: recipeID, ChefID: otherChefID}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		}).
		Return(errors.Wrap(domainerrors.ErrForbidden, "recipe does not belong to chef"))

	recipe, err := fx.service.UpdateRecipe(ctx, chefID, recipeID, &usecase.UpdateRecipeInput{Price: &newPrice})
	require.Error(t, err)
	assert.Nil(t, recipe)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCatalogService_UpdateRecipe_PartialUpdate(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	chefID := uuid.New()
	recipeID := uuid.New()
	newPrice := 500.0
	unavailable := false

	existing := &entity.Recipe{
		ID:          recipeID,
		ChefID:      chefID,
		Name:        "Chicken Biryani",
		Price:       450,
		IsAvailable: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(existing, nil)

			mockRecipeRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Recipe")).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	recipe, err := fx.service.UpdateRecipe(ctx, chefID, recipeID, &usecase.UpdateRecipeInput{
		Price:       &newPrice,
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, recipe.Price)
	assert.False(t, recipe.IsAvailable)
	assert.Equal(t, "Chicken Biryani", recipe.Name)
}

func TestCatalogService_DeleteRecipe_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	chefID := uuid.New()
	recipeID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(&entity.Recipe{ID: recipeID, ChefID: chefID}, nil)

			mockRecipeRepo.EXPECT().
				Delete(ctx, recipeID).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := fx.service.DeleteRecipe(ctx, chefID, recipeID)
	require.NoError(t, err)
}
