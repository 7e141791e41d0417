package impl

import (
	"context"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	"eventhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo, Logger: newDiscardLogger()})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(_ context.Context, device *entity.UserDevice) {
			device.ID = "d1"
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, "u1", &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "d1", device.ID)
	assert.Equal(t, "u1", device.UserID)
	assert.Equal(t, entity.PlatformIOS, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(mock.Anything, "d1").Return(&entity.UserDevice{ID: "d1", UserID: "u1"}, nil)
		fx.deviceRepo.EXPECT().UpdateToken(mock.Anything, "d1", "new-token").Return(nil)

		assert.NoError(t, fx.service.UpdateFCMToken(context.Background(), "u1", "d1", "new-token"))
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(mock.Anything, "d1").Return(&entity.UserDevice{ID: "d1", UserID: "u2"}, nil)

		err := fx.service.UpdateFCMToken(context.Background(), "u1", "d1", "new-token")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindByID(mock.Anything, "d9").Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(context.Background(), "u1", "d9", "new-token")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("empty token", func(t *testing.T) {
		fx := createTestDeviceService(t)

		err := fx.service.UpdateFCMToken(context.Background(), "u1", "d1", " ")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	fx.deviceRepo.EXPECT().FindByID(mock.Anything, "d1").Return(&entity.UserDevice{ID: "d1", UserID: "u1"}, nil)
	fx.deviceRepo.EXPECT().Deactivate(mock.Anything, "d1").Return(nil)

	assert.NoError(t, fx.service.DeactivateDevice(context.Background(), "u1", "d1"))
}
