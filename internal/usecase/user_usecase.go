// Package usecase defines the application's use case interfaces and their
// input/output data structures.
package usecase

import (
	"context"

	"cookify/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput represents the input for registering a new customer account.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
}

// RegisterChefInput represents the input for registering a chef account.
// An existing customer account can also be upgraded with the chef role.
type RegisterChefInput struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Phone       string `json:"phone" validate:"omitempty,min=7,max=20"`
	KitchenName string `json:"kitchen_name" validate:"required,max=100"`
	Bio         string `json:"bio" validate:"max=1000"`
}

// LoginInput represents the input for email/password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterOutput is returned after a successful registration.
type RegisterOutput struct {
	User *entity.User `json:"user"`
}

// LoginOutput is returned after a successful login.
type LoginOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// UserUsecase defines the interface for account management use cases.
type UserUsecase interface {
	// RegisterUser creates a new customer account.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// RegisterChef creates a new chef account, or attaches a chef profile to
	// an existing account after verifying the password.
	RegisterChef(ctx context.Context, input *RegisterChefInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile returns the user with roles and chef profile preloaded.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// DeleteAccount removes the user, cascading to addresses and role
	// assignments. Rejected while the user still has orders.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
