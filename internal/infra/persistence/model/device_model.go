package model

import (
	"time"

	"eventhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserDeviceModel is a document of the user_devices collection.
// (userId, deviceId) is unique.
type UserDeviceModel struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    bson.ObjectID `bson:"userId"`
	FCMToken  string        `bson:"fcmToken"`
	DeviceID  string        `bson:"deviceId"`
	Platform  string        `bson:"platform"`
	IsActive  bool          `bson:"isActive"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

// ToEntity converts the document back into a device.
func (m *UserDeviceModel) ToEntity() *entity.UserDevice {
	return &entity.UserDevice{
		ID:        m.ID.Hex(),
		UserID:    m.UserID.Hex(),
		FCMToken:  m.FCMToken,
		DeviceID:  m.DeviceID,
		Platform:  entity.Platform(m.Platform),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
