package entity

import "time"

// Platform is the client platform of a device.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging token.
	DeviceID  string    `json:"device_id"` // Unique device identifier from the client.
	Platform  Platform  `json:"platform"`
	IsActive  bool      `json:"is_active"` // Cleared when the push provider rejects the token.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
