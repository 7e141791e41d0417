package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
)

// NotificationPage is one page of a user's notifications plus the unread total.
type NotificationPage struct {
	Items       []*entity.Notification `json:"items"`
	UnreadCount int64                  `json:"unread_count"`
}

// NotificationUsecase defines the interface for reading in-app notifications
type NotificationUsecase interface {
	GetNotifications(ctx context.Context, filter repository.NotificationFilter) (*NotificationPage, error)

	// MarkRead is allowed to the recipient only.
	MarkRead(ctx context.Context, userID, id string) error

	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
