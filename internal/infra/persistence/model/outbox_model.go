package model

import (
	"time"

	"eventhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OutboxModel is a document of the outbox collection. References are kept
// in their domain form because the record is only ever read back as a message.
type OutboxModel struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Type           string        `bson:"type"`
	ActorID        string        `bson:"actorId"`
	EventID        string        `bson:"eventId,omitempty"`
	OrganizationID string        `bson:"organizationId,omitempty"`
	ConnectionID   string        `bson:"connectionId,omitempty"`
	RecipientID    string        `bson:"recipientId,omitempty"`
	RequestID      string        `bson:"requestId,omitempty"`
	Status         string        `bson:"status"`
	Attempts       int           `bson:"attempts"`
	AvailableAt    time.Time     `bson:"availableAt"`
	LockedUntil    *time.Time    `bson:"lockedUntil,omitempty"`
	LastError      string        `bson:"lastError,omitempty"`
	CreatedAt      time.Time     `bson:"createdAt"`
	DispatchedAt   *time.Time    `bson:"dispatchedAt,omitempty"`
}

// NewOutboxModel converts an outbox record into its document.
func NewOutboxModel(event *entity.OutboxEvent) *OutboxModel {
	return &OutboxModel{
		Type:           string(event.Type),
		ActorID:        event.ActorID,
		EventID:        event.EventID,
		OrganizationID: event.OrganizationID,
		ConnectionID:   event.ConnectionID,
		RecipientID:    event.RecipientID,
		RequestID:      event.RequestID,
		Status:         string(event.Status),
		Attempts:       event.Attempts,
		AvailableAt:    event.AvailableAt,
		LockedUntil:    event.LockedUntil,
		LastError:      event.LastError,
		CreatedAt:      event.CreatedAt,
		DispatchedAt:   event.DispatchedAt,
	}
}

// ToEntity converts the document back into an outbox record.
func (m *OutboxModel) ToEntity() *entity.OutboxEvent {
	return &entity.OutboxEvent{
		ID:             m.ID.Hex(),
		Type:           entity.DomainEventType(m.Type),
		ActorID:        m.ActorID,
		EventID:        m.EventID,
		OrganizationID: m.OrganizationID,
		ConnectionID:   m.ConnectionID,
		RecipientID:    m.RecipientID,
		RequestID:      m.RequestID,
		Status:         entity.OutboxStatus(m.Status),
		Attempts:       m.Attempts,
		AvailableAt:    m.AvailableAt,
		LockedUntil:    m.LockedUntil,
		LastError:      m.LastError,
		CreatedAt:      m.CreatedAt,
		DispatchedAt:   m.DispatchedAt,
	}
}
