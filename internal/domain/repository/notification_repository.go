package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the notification-related database operations.
type NotificationRepository interface {
	// InsertMany stores notifications independently of each other. Entries whose
	// dedupe key already exists are skipped. It returns how many were inserted.
	InsertMany(ctx context.Context, notifications []*entity.Notification) (int, error)

	FindByID(ctx context.Context, id string) (*entity.Notification, error)

	// List returns the newest notifications first.
	List(ctx context.Context, filter NotificationFilter) ([]*entity.Notification, error)

	// CountUnread returns how many unread notifications recipientID has.
	CountUnread(ctx context.Context, recipientID string) (int64, error)

	// MarkRead sets the read flag of one notification.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead sets the read flag of every notification of recipientID.
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}
