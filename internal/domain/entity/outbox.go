package entity

import "time"

// DomainEventType names something that happened and may notify users.
type DomainEventType string

const (
	DomainEventEventPublished      DomainEventType = "EVENT_PUBLISHED"
	DomainEventRegistrationCreated DomainEventType = "REGISTRATION_CREATED"
	DomainEventConnectionAccepted  DomainEventType = "CONNECTION_ACCEPTED"
)

// OutboxStatus is the delivery state of an outbox record.
type OutboxStatus string

const (
	OutboxStatusPending    OutboxStatus = "PENDING"
	OutboxStatusProcessing OutboxStatus = "PROCESSING"
	OutboxStatusDispatched OutboxStatus = "DISPATCHED"
	OutboxStatusDead       OutboxStatus = "DEAD"
)

// OutboxEvent is a domain event persisted together with the write that
// caused it, waiting to be published on the event bus.
type OutboxEvent struct {
	ID             string          `json:"id"`
	Type           DomainEventType `json:"type"`
	ActorID        string          `json:"actor_id"`
	EventID        string          `json:"event_id,omitempty"`
	OrganizationID string          `json:"organization_id,omitempty"`
	ConnectionID   string          `json:"connection_id,omitempty"`
	RecipientID    string          `json:"recipient_id,omitempty"`
	RequestID      string          `json:"request_id,omitempty"`
	Status         OutboxStatus    `json:"status"`
	Attempts       int             `json:"attempts"`
	AvailableAt    time.Time       `json:"available_at"`
	LockedUntil    *time.Time      `json:"locked_until,omitempty"`
	LastError      string          `json:"last_error,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	DispatchedAt   *time.Time      `json:"dispatched_at,omitempty"`
}
