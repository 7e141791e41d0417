package usecase

import "context"

// OutboxUsecase moves outbox records onto the event bus.
type OutboxUsecase interface {
	// RelayBatch claims due records and publishes them. It returns how many
	// records were claimed.
	RelayBatch(ctx context.Context) (int, error)
}
