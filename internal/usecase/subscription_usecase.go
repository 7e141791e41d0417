package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
)

// SubscriptionUsecase defines the interface for organization subscriptions
type SubscriptionUsecase interface {
	// Subscribe is idempotent and returns the existing subscription on repeat.
	Subscribe(ctx context.Context, userID, organizationID string) (*entity.Subscription, error)

	Unsubscribe(ctx context.Context, userID, organizationID string) error

	GetUserSubscriptions(ctx context.Context, userID string, page repository.Page) ([]*entity.Subscription, error)

	// GetOrganizationSubscribers is allowed to members of the organization.
	GetOrganizationSubscribers(ctx context.Context, callerID, organizationID string, page repository.Page) ([]*entity.Subscription, error)
}
