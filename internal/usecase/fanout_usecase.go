package usecase

import (
	"context"

	"eventhub/internal/domain/service"
)

// FanoutUsecase turns domain events into notifications.
type FanoutUsecase interface {
	// HandleDomainEvent creates one notification per recipient and pushes
	// it to their devices. Reprocessing an event creates nothing new.
	// It returns how many notifications were created.
	HandleDomainEvent(ctx context.Context, event *service.DomainEvent) (int, error)
}
