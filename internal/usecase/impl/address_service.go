package impl

import (
	"context"
	"log/slog"

	"cookify/config"
	deliverycontext "cookify/internal/delivery/context"
	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager    repository.TransactionManager
	addressRepo  repository.AddressRepository
	maxAddresses int
	logger       *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	maxAddresses := 0
	if params.Config != nil && params.Config.Ordering != nil {
		maxAddresses = params.Config.Ordering.MaxAddressesPerUser
	}

	return &addressService{
		txManager:    params.TxManager,
		addressRepo:  params.AddressRepo,
		maxAddresses: maxAddresses,
		logger:       params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAddresses returns all addresses of the user, default first.
func (srv *addressService) GetAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	// Single query operation - use direct repository instance
	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to get addresses", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get addresses")
	}

	return addresses, nil
}

// AddAddress creates a new address. The user's first address becomes the
// default automatically; an explicit default demotes the previous one.
func (srv *addressService) AddAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddAddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Adding address", slog.Any("userID", userID), slog.String("label", input.Label))

	newAddress := &entity.Address{
		UserID:     userID,
		Label:      input.Label,
		Street:     input.Street,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Phone:      input.Phone,
		IsDefault:  input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		addressCount, err := addressRepo.CountByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}
		if srv.maxAddresses > 0 && addressCount >= int64(srv.maxAddresses) {
			return domainerrors.ErrAddressLimitReached.WrapMessage("address limit reached")
		}

		// First address always becomes the default.
		if addressCount == 0 {
			newAddress.IsDefault = true
		}

		if newAddress.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear previous default address")
			}
		}

		return addressRepo.Create(ctx, newAddress)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to add address", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute address creation transaction")
	}

	return newAddress, nil
}

// UpdateAddress applies a partial update after verifying ownership.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Updating address", slog.Any("userID", userID), slog.Any("addressID", addressID))

	var updatedAddress *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.loadOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		applyAddressUpdate(address, input)

		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		updatedAddress = address

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update address", slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute address update transaction")
	}

	return updatedAddress, nil
}

// SetDefaultAddress makes the address the single default for the user.
// Clear-then-set runs in one transaction so two concurrent calls cannot leave
// two defaults behind.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.log(ctx).Info("Setting default address", slog.Any("userID", userID), slog.Any("addressID", addressID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.loadOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.ClearDefault(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear previous default address")
		}

		address.IsDefault = true

		return addressRepo.Update(ctx, address)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to set default address", slog.Any("addressID", addressID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute default address transaction")
	}

	return nil
}

// DeleteAddress removes an address after verifying ownership.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.log(ctx).Info("Deleting address", slog.Any("userID", userID), slog.Any("addressID", addressID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if _, err := srv.loadOwnedAddress(ctx, addressRepo, userID, addressID); err != nil {
			return err
		}

		return addressRepo.Delete(ctx, addressID)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete address", slog.Any("addressID", addressID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute address deletion transaction")
	}

	return nil
}

// loadOwnedAddress fetches the address and verifies it belongs to the user.
func (srv *addressService) loadOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	if address.UserID != userID {
		srv.log(ctx).Warn("Address ownership violation", slog.Any("userID", userID), slog.Any("addressID", addressID))

		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address does not belong to user")
	}

	return address, nil
}

func applyAddressUpdate(address *entity.Address, input *usecase.UpdateAddressInput) {
	if input.Label != nil {
		address.Label = *input.Label
	}
	if input.Street != nil {
		address.Street = *input.Street
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.PostalCode != nil {
		address.PostalCode = *input.PostalCode
	}
	if input.Phone != nil {
		address.Phone = *input.Phone
	}
}
