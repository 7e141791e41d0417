package service

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
)

// DomainEvent is the message the outbox relay puts on the event bus.
// ID is the outbox record id and stays the same across redeliveries.
type DomainEvent struct {
	ID             string                 `json:"id"`
	Type           entity.DomainEventType `json:"type"`
	RequestID      string                 `json:"request_id,omitempty"` // For distributed tracing
	ActorID        string                 `json:"actor_id"`
	EventID        string                 `json:"event_id,omitempty"`
	OrganizationID string                 `json:"organization_id,omitempty"`
	ConnectionID   string                 `json:"connection_id,omitempty"`
	RecipientID    string                 `json:"recipient_id,omitempty"`
	OccurredAt     time.Time              `json:"occurred_at"`
}

// NewDomainEvent converts an outbox record into its bus message.
func NewDomainEvent(record *entity.OutboxEvent) *DomainEvent {
	return &DomainEvent{
		ID:             record.ID,
		Type:           record.Type,
		RequestID:      record.RequestID,
		ActorID:        record.ActorID,
		EventID:        record.EventID,
		OrganizationID: record.OrganizationID,
		ConnectionID:   record.ConnectionID,
		RecipientID:    record.RecipientID,
		OccurredAt:     record.CreatedAt,
	}
}

// EventPublisher defines the interface for publishing domain events to a message queue
type EventPublisher interface {
	// Publish sends one domain event. A nil error means the bus accepted it.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// EventHandler processes one delivered domain event. Returning an error
// asks the transport to redeliver it.
type EventHandler func(ctx context.Context, event *DomainEvent) error

// EventSubscriber pulls domain events from the bus. Push based transports
// have no subscriber and deliver to the worker's HTTP endpoint instead.
type EventSubscriber interface {
	// Receive blocks, calling handler for each message, until ctx is done.
	Receive(ctx context.Context, handler EventHandler) error

	// Close releases any resources held by the subscriber
	Close() error
}
