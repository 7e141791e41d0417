package model

import (
	"time"

	"eventhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NotificationModel is a document of the notifications collection.
// dedupeKey is unique when present.
type NotificationModel struct {
	ID          bson.ObjectID  `bson:"_id,omitempty"`
	RecipientID bson.ObjectID  `bson:"recipientId"`
	SenderID    *bson.ObjectID `bson:"senderId,omitempty"`
	Type        string         `bson:"type"`
	Title       string         `bson:"title"`
	Content     string         `bson:"content"`
	Read        bool           `bson:"read"`
	EventID     *bson.ObjectID `bson:"eventId,omitempty"`
	DedupeKey   string         `bson:"dedupeKey,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt"`
}

// NewNotificationModel converts a notification into its document.
func NewNotificationModel(notification *entity.Notification) (*NotificationModel, error) {
	recipientID, err := ParseID(notification.RecipientID)
	if err != nil {
		return nil, err
	}
	senderID, err := ParseOptionalID(notification.SenderID)
	if err != nil {
		return nil, err
	}
	eventID, err := ParseOptionalID(notification.EventID)
	if err != nil {
		return nil, err
	}

	return &NotificationModel{
		ID:          bson.NewObjectID(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        string(notification.Type),
		Title:       notification.Title,
		Content:     notification.Content,
		Read:        notification.Read,
		EventID:     eventID,
		DedupeKey:   notification.DedupeKey,
		CreatedAt:   notification.CreatedAt,
	}, nil
}

// ToEntity converts the document back into a notification.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:          m.ID.Hex(),
		RecipientID: m.RecipientID.Hex(),
		SenderID:    Hex(m.SenderID),
		Type:        entity.NotificationType(m.Type),
		Title:       m.Title,
		Content:     m.Content,
		Read:        m.Read,
		EventID:     Hex(m.EventID),
		DedupeKey:   m.DedupeKey,
		CreatedAt:   m.CreatedAt,
	}
}
