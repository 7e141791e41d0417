package repository

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// ErrOutboxEventNotFound is returned when an outbox record is not found.
var ErrOutboxEventNotFound = errors.New("outbox event not found")

// OutboxRepository stores domain events until the relay publishes them.
type OutboxRepository interface {
	// Enqueue stores a PENDING record. Call it with the transaction context
	// of the write that produced the event.
	Enqueue(ctx context.Context, event *entity.OutboxEvent) error

	// Claim atomically moves up to limit due records to PROCESSING, locked
	// until now+lease. Due means PENDING with AvailableAt <= now, or
	// PROCESSING with an expired lock.
	Claim(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*entity.OutboxEvent, error)

	// MarkDispatched records a successful publish.
	MarkDispatched(ctx context.Context, id string, at time.Time) error

	// Reschedule returns a record to PENDING after a failed publish.
	Reschedule(ctx context.Context, id string, attempts int, availableAt time.Time, lastErr string) error

	// MarkDead gives up on a record.
	MarkDead(ctx context.Context, id string, attempts int, lastErr string) error
}
