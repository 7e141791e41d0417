package impl

import (
	"context"
	"log/slog"

	deliverycontext "eventhub/internal/delivery/context"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, filter repository.NotificationFilter) (*usecase.NotificationPage, error) {
	items, err := s.notificationRepo.List(ctx, filter)
	if err != nil {
		return nil, translateError(err, "failed to list notifications")
	}

	unread, err := s.notificationRepo.CountUnread(ctx, filter.RecipientID)
	if err != nil {
		return nil, translateError(err, "failed to count unread notifications")
	}

	return &usecase.NotificationPage{
		Items:       items,
		UnreadCount: unread,
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id string) error {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return translateError(err, "failed to find notification",
			mapErr(repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound))
	}
	if notification.RecipientID != userID {
		return domainerrors.ErrForbidden.WithDetails("notification belongs to another user")
	}
	if notification.Read {
		return nil
	}

	if err := s.notificationRepo.MarkRead(ctx, notification.ID); err != nil {
		return translateError(err, "failed to mark notification read",
			mapErr(repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound))
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, translateError(err, "failed to mark notifications read")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Notifications marked read",
		slog.String("user_id", userID), slog.Int64("updated", updated))

	return updated, nil
}
