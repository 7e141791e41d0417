package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Upsert registers a device, refreshing token and platform when the
	// (user, device id) pair is already known. The device is reactivated.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// FindByID retrieves a device by its store id.
	FindByID(ctx context.Context, id string) (*entity.UserDevice, error)

	// ListByUser retrieves all devices of a user, including inactive ones.
	ListByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// ListActiveByUsers retrieves the active devices of many users for push delivery.
	ListActiveByUsers(ctx context.Context, userIDs []string) ([]*entity.UserDevice, error)

	// UpdateToken replaces the FCM token of a device.
	UpdateToken(ctx context.Context, id, fcmToken string) error

	// Deactivate stops pushes to a device.
	Deactivate(ctx context.Context, id string) error

	// DeactivateByTokens stops pushes to every device holding one of tokens.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)
}
