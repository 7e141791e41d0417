package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// RegisterDevice registers a new device or updates an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID string, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: strings.TrimSpace(deviceInfo.FCMToken),
		DeviceID: deviceInfo.DeviceID,
		Platform: entity.Platform(deviceInfo.Platform),
		IsActive: true,
	}

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, translateError(err, "failed to register device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device registered",
		slog.String("device_id", device.ID),
		slog.String("platform", string(device.Platform)),
	)

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID, deviceID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}

	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateToken(ctx, device.ID, fcmToken); err != nil {
		return translateError(err, "failed to update FCM token",
			mapErr(repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound))
	}

	return nil
}

// GetUserDevices retrieves all devices of a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateError(err, "failed to list devices")
	}

	return devices, nil
}

// DeactivateDevice stops pushes to a device
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID string) error {
	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}

	if err := s.deviceRepo.Deactivate(ctx, device.ID); err != nil {
		return translateError(err, "failed to deactivate device",
			mapErr(repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound))
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID string) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return nil, translateError(err, "failed to find device",
			mapErr(repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound))
	}
	if device.UserID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("device belongs to another user")
	}

	return device, nil
}
