// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"cookify/config"
	deliverycontext "cookify/internal/delivery/context"
	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	"cookify/internal/domain/service"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	orderRepo    repository.OrderRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	OrderRepo    repository.OrderRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		orderRepo:    params.OrderRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the registration of a new customer account.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	hashedPassword, err := srv.prepareCredentials(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
		IsActive:     true,
		Roles:        entity.Roles{entity.RoleUser},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("User registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// RegisterChef creates a new chef account, or attaches a chef profile to an
// existing account after verifying the password.
func (srv *userService) RegisterChef(ctx context.Context, input *usecase.RegisterChefInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting chef registration", slog.String("email", input.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		chefRepo := repoFactory.NewChefRepository()

		existingUser, err := userRepo.FindByEmail(ctx, input.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return srv.handleNewChefRegistration(ctx, input, userRepo, chefRepo, &registeredUser)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by email")
		}

		return srv.handleExistingChefRegistration(ctx, input, userRepo, chefRepo, existingUser, &registeredUser)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute chef registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute chef registration transaction")
	}

	srv.log(ctx).Debug("Chef registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func (srv *userService) handleNewChefRegistration(
	ctx context.Context,
	input *usecase.RegisterChefInput,
	userRepo repository.UserRepository,
	chefRepo repository.ChefRepository,
	registeredUser **entity.User,
) error {
	hashedPassword, err := srv.prepareCredentials(ctx, input.Email, input.Password)
	if err != nil {
		return err
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
		IsActive:     true,
		Roles:        entity.Roles{entity.RoleUser, entity.RoleChef},
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user during chef registration")
	}

	newProfile := &entity.ChefProfile{
		UserID:      newUser.ID,
		KitchenName: input.KitchenName,
		Bio:         input.Bio,
	}

	if err := chefRepo.Create(ctx, newProfile); err != nil {
		return errors.Wrap(err, "failed to create chef profile during registration")
	}

	newUser.ChefProfile = newProfile
	*registeredUser = newUser

	return nil
}

func (srv *userService) handleExistingChefRegistration(
	ctx context.Context,
	input *usecase.RegisterChefInput,
	userRepo repository.UserRepository,
	chefRepo repository.ChefRepository,
	existingUser *entity.User,
	registeredUser **entity.User,
) error {
	if !srv.hasher.Check(input.Password, existingUser.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch when attaching chef profile", slog.String("email", input.Email))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch during chef registration")
	}

	if existingUser.ChefProfile != nil {
		srv.log(ctx).Warn("Chef profile already exists for account", slog.Any("userID", existingUser.ID))

		return domainerrors.ErrChefAlreadyExists.WrapMessage("chef profile already registered for this account")
	}

	if err := userRepo.AssignRole(ctx, existingUser.ID, entity.RoleChef); err != nil {
		return errors.Wrap(err, "failed to assign chef role")
	}

	newProfile := &entity.ChefProfile{
		UserID:      existingUser.ID,
		KitchenName: input.KitchenName,
		Bio:         input.Bio,
	}

	if err := chefRepo.Create(ctx, newProfile); err != nil {
		return errors.Wrap(err, "failed to create chef profile for existing account")
	}

	existingUser.Roles = append(existingUser.Roles, entity.RoleChef)
	existingUser.ChefProfile = newProfile
	*registeredUser = existingUser

	srv.log(ctx).Debug("Attached chef profile to existing account", slog.Any("userID", existingUser.ID))

	return nil
}

// prepareCredentials validates password strength and hashes the password.
// Hashing runs outside any transaction because bcrypt is CPU-bound.
func (srv *userService) prepareCredentials(ctx context.Context, email, password string) (string, error) {
	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to hash password during registration")
	}

	return hashedPassword, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	loggedInUser, err := srv.loadLoginUser(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if !loggedInUser.IsActive {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("userID", loggedInUser.ID))

		return nil, errors.Wrap(domainerrors.ErrUserInactive, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loggedInUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Roles.ToStrings())
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         loggedInUser,
	}, nil
}

func (srv *userService) loadLoginUser(ctx context.Context, email string) (*entity.User, error) {
	var loggedInUser *entity.User

	// Load user data from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		var findUserErr error
		loggedInUser, findUserErr = userRepo.FindByEmail(ctx, email)
		if findUserErr != nil {
			if errors.Is(findUserErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findUserErr, "failed to find user by email")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	return loggedInUser, nil
}

// GetProfile returns the user with roles and chef profile preloaded.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	// Single query operation - use direct repository instance
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to get user profile")
		}

		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// DeleteAccount removes the user together with their addresses and role
// assignments. Users with order history cannot be deleted.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to delete account", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		orderRepo := repoFactory.NewOrderRepository()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "failed to delete account")
			}

			return errors.Wrap(err, "failed to find user for deletion")
		}

		orderCount, err := orderRepo.CountByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count user orders")
		}
		if orderCount > 0 {
			return domainerrors.ErrUserHasOrders.WrapMessage("account has order history and cannot be deleted")
		}

		return userRepo.Delete(ctx, userID)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}
