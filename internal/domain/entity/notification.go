package entity

import "time"

// NotificationType tells clients how to render a notification.
type NotificationType string

const (
	NotificationTypeNewEvent      NotificationType = "NEW_EVENT"
	NotificationTypeJoinedEvent   NotificationType = "JOINED_EVENT"
	NotificationTypeFriendRequest NotificationType = "FRIEND_REQUEST"
)

// Notification is an in-app message addressed to one user. Only Read
// changes after creation.
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	SenderID    string           `json:"sender_id,omitempty"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Read        bool             `json:"read"`
	EventID     string           `json:"event_id,omitempty"`
	DedupeKey   string           `json:"-"` // Unique per (domain event, recipient).
	CreatedAt   time.Time        `json:"created_at"`
}

// NotificationDedupeKey builds the key that makes fan-out idempotent.
func NotificationDedupeKey(domainEventID, recipientID string) string {
	return domainEventID + ":" + recipientID
}
