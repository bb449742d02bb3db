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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	orderRepo    *mockRepo.MockOrderRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		OrderRepo:    orderRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.True(t, output.User.IsActive)
	assert.True(t, output.User.HasRole(entity.RoleUser))
	assert.False(t, output.User.HasRole(entity.RoleChef))
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "weak",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(errors.New("password too short"))

	output, err := fx.service.RegisterUser(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_RegisterChef_NewAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterChefInput{
		Username:    "chefmaria",
		Email:       "maria@example.com",
		Password:    "Password123!",
		KitchenName: "Maria's Kitchen",
		Bio:         "Home-style cooking",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockChefRepo := mockRepo.NewMockChefRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewChefRepository().Return(mockChefRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockChefRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ChefProfile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterChef(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.User.HasRole(entity.RoleChef))
	require.NotNil(t, output.User.ChefProfile)
	assert.Equal(t, input.KitchenName, output.User.ChefProfile.KitchenName)
}

func TestUserService_RegisterChef_AttachToExistingAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterChefInput{
		Username:    "testuser",
		Email:       "test@example.com",
		Password:    "Password123!",
		KitchenName: "Side Hustle Kitchen",
	}

	existingUser := &entity.User{
		ID:           userID,
		Username:     "testuser",
		Email:        input.Email,
		PasswordHash: "hashed_password",
		IsActive:     true,
		Roles:        entity.Roles{entity.RoleUser},
	}

	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockChefRepo := mockRepo.NewMockChefRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewChefRepository().Return(mockChefRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(existingUser, nil)

			mockUserRepo.EXPECT().
				AssignRole(ctx, userID, entity.RoleChef).
				Return(nil)

			mockChefRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ChefProfile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterChef(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.True(t, output.User.HasRole(entity.RoleChef))
	require.NotNil(t, output.User.ChefProfile)
}

func TestUserService_RegisterChef_ProfileAlreadyExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterChefInput{
		Username:    "chefmaria",
		Email:       "maria@example.com",
		Password:    "Password123!",
		KitchenName: "Maria's Kitchen",
	}

	existingUser := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
		Roles:        entity.Roles{entity.RoleUser, entity.RoleChef},
		ChefProfile:  &entity.ChefProfile{KitchenName: "Maria's Kitchen"},
	}

	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockChefRepo := mockRepo.NewMockChefRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewChefRepository().Return(mockChefRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(existingUser, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrChefAlreadyExists))
		}).
		Return(errors.Wrap(domainerrors.ErrChefAlreadyExists, "chef profile already registered for this account"))

	output, err := fx.service.RegisterChef(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrChefAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	loggedInUser := &entity.User{
		ID:           userID,
		Username:     "testuser",
		Email:        input.Email,
		PasswordHash: "hashed_password",
		IsActive:     true,
		Roles:        entity.Roles{entity.RoleUser},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(loggedInUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"user"}).
		Return("access_token", "refresh_token", nil)

	output, err := fx.service.Login(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "WrongPassword!",
	}

	loggedInUser := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
		IsActive:     true,
		Roles:        entity.Roles{entity.RoleUser},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(loggedInUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	inactiveUser := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
		IsActive:     false,
		Roles:        entity.Roles{entity.RoleUser},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(inactiveUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserInactive))
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_DeleteAccount_RejectedWithOrders(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID}, nil)

			mockOrderRepo.EXPECT().
				CountByUser(ctx, userID).
				Return(int64(3), nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrUserHasOrders))
		}).
		Return(errors.Wrap(domainerrors.ErrUserHasOrders, "account has order history"))

	err := fx.service.DeleteAccount(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserHasOrders))
}

func TestUserService_DeleteAccount_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID}, nil)

			mockOrderRepo.EXPECT().
				CountByUser(ctx, userID).
				Return(int64(0), nil)

			mockUserRepo.EXPECT().
				Delete(ctx, userID).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := fx.service.DeleteAccount(ctx, userID)
	require.NoError(t, err)
}
