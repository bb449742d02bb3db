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

func createTestAddressService(t *testing.T) (usecase.AddressUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockAddressRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	service := NewAddressService(AddressServiceParams{
		TxManager:   txManager,
		AddressRepo: addressRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return service, txManager, addressRepo
}

func TestAddressService_AddAddress_FirstBecomesDefault(t *testing.T) {
	service, txManager, _ := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddAddressInput{
		Label:  "Home",
		Street: "12 Garden Road",
		City:   "Taipei",
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

			mockAddressRepo.EXPECT().
				CountByUser(ctx, userID).
				Return(int64(0), nil)

			mockAddressRepo.EXPECT().
				ClearDefault(ctx, userID).
				Return(nil)

			mockAddressRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Address")).
				Run(func(ctx context.Context, address *entity.Address) {
					address.ID = uuid.New()
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	address, err := service.AddAddress(ctx, userID, input)
	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, userID, address.UserID)
}

func TestAddressService_AddAddress_LimitReached(t *testing.T) {
	service, txManager, _ := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

			mockAddressRepo.EXPECT().
				CountByUser(ctx, userID).
				Return(int64(5), nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrAddressLimitReached))
		}).
		Return(errors.Wrap(domainerrors.ErrAddressLimitReached, "address limit reached"))

	address, err := service.AddAddress(ctx, userID, &usecase.AddAddressInput{Label: "Office", Street: "1 Work St", City: "Taipei"})
	require.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressLimitReached))
}

func TestAddressService_SetDefaultAddress_ClearsThenSets(t *testing.T) {
	service, txManager, _ := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

			mockAddressRepo.EXPECT().
				FindByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, UserID: userID}, nil)

			mockAddressRepo.EXPECT().
				ClearDefault(ctx, userID).
				Return(nil)

			mockAddressRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(address *entity.Address) bool {
					return address.ID == addressID && address.IsDefault
				})).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := service.SetDefaultAddress(ctx, userID, addressID)
	require.NoError(t, err)
}

func TestAddressService_SetDefaultAddress_OwnershipViolation(t *testing.T) {
	service, txManager, _ := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	otherUserID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)

			mockAddressRepo.EXPECT().
				FindByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, UserID: otherUserID}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrAddressOwnershipViolation))
		}).
		Return(errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address does not belong to user"))

	err := service.SetDefaultAddress(ctx, userID, addressID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressOwnershipViolation))
}

func TestAddressService_GetAddresses(t *testing.T) {
	service, _, addressRepo := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Address{
		{ID: uuid.New(), UserID: userID, Label: "Home", IsDefault: true},
		{ID: uuid.New(), UserID: userID, Label: "Office"},
	}

	addressRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	addresses, err := service.GetAddresses(ctx, userID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.True(t, addresses[0].IsDefault)
}
