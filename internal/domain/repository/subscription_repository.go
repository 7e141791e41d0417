package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// ErrSubscriptionNotFound is returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the operations for subscription persistence.
type SubscriptionRepository interface {
	// Upsert subscribes userID to organizationID, returning the existing
	// subscription when there already is one.
	Upsert(ctx context.Context, userID, organizationID string) (*entity.Subscription, error)

	// Delete removes the subscription of userID to organizationID.
	Delete(ctx context.Context, userID, organizationID string) error

	List(ctx context.Context, filter SubscriptionFilter) ([]*entity.Subscription, error)

	// ListSubscriberIDs returns every user subscribed to organizationID.
	ListSubscriberIDs(ctx context.Context, organizationID string) ([]string, error)
}
