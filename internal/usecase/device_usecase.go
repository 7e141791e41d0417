package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
)

// DeviceInfo is a push target announced by a client app. DeviceID is
// chosen by the client and is unique per user.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=128"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase manages the push targets fan-out delivers to.
type DeviceUsecase interface {
	// RegisterDevice upserts by (user, device id) and reactivates the device.
	RegisterDevice(ctx context.Context, userID string, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken rotates the token of a device the user owns.
	UpdateFCMToken(ctx context.Context, userID, deviceID, fcmToken string) error

	GetUserDevices(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// DeactivateDevice keeps the record but excludes it from fan-out.
	DeactivateDevice(ctx context.Context, userID, deviceID string) error
}
