package impl

import (
	"context"
	"testing"

	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	mockRepo "cookify/internal/mocks/repository"
	mockSvc "cookify/internal/mocks/service"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func customerActor(userID uuid.UUID) usecase.OrderActor {
	return usecase.OrderActor{UserID: userID, Roles: entity.Roles{entity.RoleUser}}
}

func chefActor(chefID uuid.UUID) usecase.OrderActor {
	return usecase.OrderActor{UserID: chefID, Roles: entity.Roles{entity.RoleUser, entity.RoleChef}}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	chefID := uuid.New()
	addressID := uuid.New()
	recipeID := uuid.New()

	input := &usecase.PlaceOrderInput{
		AddressID: addressID,
		Items: []usecase.OrderItemInput{
			{RecipeID: recipeID, Quantity: 2},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)
			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockAddressRepo.EXPECT().
				FindByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, UserID: userID}, nil)

			mockRecipeRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{recipeID}).
				Return([]*entity.Recipe{
					{ID: recipeID, ChefID: chefID, Price: 450, IsAvailable: true},
				}, nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.MasterOrder")).
				Run(func(ctx context.Context, order *entity.MasterOrder) {
					order.ID = uuid.New()
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, chefID, order.ChefID)
	assert.Equal(t, 900.0, order.TotalAmount)
	assert.Equal(t, 0.0, order.DiscountAmount)
	assert.Equal(t, 900.0, order.FinalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 450.0, order.Items[0].UnitPrice)
	assert.Equal(t, 900.0, order.Items[0].TotalPrice)
}

func TestOrderService_PlaceOrder_WithCoupon(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	chefID := uuid.New()
	addressID := uuid.New()
	recipeID := uuid.New()
	coupon := activeCoupon()

	input := &usecase.PlaceOrderInput{
		AddressID:  addressID,
		CouponCode: coupon.Code,
		Items: []usecase.OrderItemInput{
			{RecipeID: recipeID, Quantity: 2},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)
			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)
			mockFactory.EXPECT().NewCouponRepository().Return(mockCouponRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockAddressRepo.EXPECT().
				FindByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, UserID: userID}, nil)

			mockRecipeRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{recipeID}).
				Return([]*entity.Recipe{
					{ID: recipeID, ChefID: chefID, Price: 450, IsAvailable: true},
				}, nil)

			mockCouponRepo.EXPECT().
				FindByCode(ctx, coupon.Code).
				Return(coupon, nil)

			mockCouponRepo.EXPECT().
				IncrementUsage(ctx, coupon.ID).
				Return(nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.MasterOrder")).
				Run(func(ctx context.Context, order *entity.MasterOrder) {
					order.ID = uuid.New()
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, 900.0, order.TotalAmount)
	assert.Equal(t, 180.0, order.DiscountAmount)
	assert.Equal(t, 720.0, order.FinalAmount)
	require.NotNil(t, order.CouponID)
	assert.Equal(t, coupon.ID, *order.CouponID)
}

func TestOrderService_PlaceOrder_EmptyOrder(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		AddressID: uuid.New(),
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyOrder))
}

func TestOrderService_PlaceOrder_MixedChefs(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	recipeA := uuid.New()
	recipeB := uuid.New()

	input := &usecase.PlaceOrderInput{
		AddressID: addressID,
		Items: []usecase.OrderItemInput{
			{RecipeID: recipeA, Quantity: 1},
			{RecipeID: recipeB, Quantity: 1},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)
			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)

			mockAddressRepo.EXPECT().
				FindByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, UserID: userID}, nil)

			mockRecipeRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{recipeA, recipeB}).
				Return([]*entity.Recipe{
					{ID: recipeA, ChefID: uuid.New(), Price: 300, IsAvailable: true},
					{ID: recipeB, ChefID: uuid.New(), Price: 250, IsAvailable: true},
				}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrMixedChefOrder))
		}).
		Return(errors.Wrap(domainerrors.ErrMixedChefOrder, "all items must come from the same chef"))

	order, err := fx.service.PlaceOrder(ctx, userID, input)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrMixedChefOrder))
}

func TestOrderService_PlaceOrder_UnavailableRecipe(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	recipeID := uuid.New()

	input := &usecase.PlaceOrderInput{
		AddressID: addressID,
		Items: []usecase.OrderItemInput{
			{RecipeID: recipeID, Quantity: 1},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)
			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)

			mockAddressRepo.EXPECT().
				FindByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, UserID: userID}, nil)

			mockRecipeRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{recipeID}).
				Return([]*entity.Recipe{
					{ID: recipeID, ChefID: uuid.New(), Price: 300, IsAvailable: false},
				}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrRecipeUnavailable))
		}).
		Return(errors.Wrap(domainerrors.ErrRecipeUnavailable, "ordered recipe is not available"))

	order, err := fx.service.PlaceOrder(ctx, userID, input)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeUnavailable))
}

func TestOrderService_UpdateOrderStatus_ChefAdvances(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	chefID := uuid.New()
	orderID := uuid.New()

	existing := &entity.MasterOrder{
		ID:          orderID,
		UserID:      uuid.New(),
		ChefID:      chefID,
		Status:      entity.StatusPending,
		FinalAmount: 720,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, orderID).
				Return(existing, nil)

			mockOrderRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(order *entity.MasterOrder) bool {
					return order.Status == entity.StatusAccepted
				})).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.UpdateOrderStatus(ctx, chefActor(chefID), orderID, &usecase.UpdateOrderStatusInput{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, order.Status)
}

func TestOrderService_UpdateOrderStatus_SkippingRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	chefID := uuid.New()
	orderID := uuid.New()

	existing := &entity.MasterOrder{
		ID:     orderID,
		UserID: uuid.New(),
		ChefID: chefID,
		Status: entity.StatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, orderID).
				Return(existing, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidStatusTransition, "invalid order status transition"))

	order, err := fx.service.UpdateOrderStatus(ctx, chefActor(chefID), orderID, &usecase.UpdateOrderStatusInput{Status: "delivered"})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_UpdateOrderStatus_DeliveredUpdatesChefAggregates(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	chefID := uuid.New()
	orderID := uuid.New()

	existing := &entity.MasterOrder{
		ID:          orderID,
		UserID:      uuid.New(),
		ChefID:      chefID,
		Status:      entity.StatusOnTheWay,
		FinalAmount: 720,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockChefRepo := mockRepo.NewMockChefRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewChefRepository().Return(mockChefRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, orderID).
				Return(existing, nil)

			mockChefRepo.EXPECT().
				AddDeliveredOrder(ctx, chefID, 720.0).
				Return(nil)

			mockOrderRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(order *entity.MasterOrder) bool {
					return order.Status == entity.StatusDelivered && order.ActualDelivery != nil
				})).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.UpdateOrderStatus(ctx, chefActor(chefID), orderID, &usecase.UpdateOrderStatusInput{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, order.Status)
	require.NotNil(t, order.ActualDelivery)
}

func TestOrderService_UpdateOrderStatus_CustomerCannotAdvance(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	existing := &entity.MasterOrder{
		ID:     orderID,
		UserID: userID,
		ChefID: uuid.New(),
		Status: entity.StatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, orderID).
				Return(existing, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		}).
		Return(errors.Wrap(domainerrors.ErrForbidden, "only the assigned chef may advance the order"))

	order, err := fx.service.UpdateOrderStatus(ctx, customerActor(userID), orderID, &usecase.UpdateOrderStatusInput{Status: "accepted"})
	require.Error(t, err)
	assert.Nil(t, order)
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	existing := &entity.MasterOrder{
		ID:     orderID,
		UserID: userID,
		ChefID: uuid.New(),
		Status: entity.StatusAccepted,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, orderID).
				Return(existing, nil)

			mockOrderRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(order *entity.MasterOrder) bool {
					return order.Status == entity.StatusCancelled
				})).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.CancelOrder(ctx, customerActor(userID), orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, order.Status)
}

func TestOrderService_CancelOrder_DeliveredRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	existing := &entity.MasterOrder{
		ID:     orderID,
		UserID: userID,
		ChefID: uuid.New(),
		Status: entity.StatusDelivered,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, orderID).
				Return(existing, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidStatusTransition, "order can no longer be cancelled"))

	order, err := fx.service.CancelOrder(ctx, customerActor(userID), orderID)
	require.Error(t, err)
	assert.Nil(t, order)
}

func TestOrderService_GetOrder_StrangerDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	existing := &entity.MasterOrder{
		ID:     orderID,
		UserID: uuid.New(),
		ChefID: uuid.New(),
		Status: entity.StatusPending,
	}

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(existing, nil)

	order, err := fx.service.GetOrder(ctx, customerActor(uuid.New()), orderID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, customerActor(uuid.New()), orderID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
