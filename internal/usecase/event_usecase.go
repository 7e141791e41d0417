package usecase

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
)

// CreateEventInput is the data needed to publish an event.
type CreateEventInput struct {
	Slug                   string           `json:"slug" validate:"omitempty,min=3,max=64"`
	Title                  string           `json:"title"`
	Description            string           `json:"description" validate:"max=5000"`
	OrganizationID         string           `json:"organization_id"`
	PartnerOrganizationIDs []string         `json:"partner_organization_ids"`
	StartTime              time.Time        `json:"start_time"`
	EndTime                time.Time        `json:"end_time"`
	Location               *entity.Location `json:"location"`
	Capacity               int              `json:"capacity" validate:"gte=0"`
}

// EventUsecase defines the interface for event use cases
type EventUsecase interface {
	// CreateEvent stores the event and, when it is published by an
	// organization, enqueues the notification of its subscribers.
	CreateEvent(ctx context.Context, organizerID string, input *CreateEventInput) (*entity.Event, error)

	// GetEvent resolves a store id or a slug.
	GetEvent(ctx context.Context, id string) (*entity.Event, error)

	ListEvents(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error)

	// UpdateEvent and DeleteEvent are allowed to the organizer only.
	UpdateEvent(ctx context.Context, callerID, id string, patch entity.EventPatch) (*entity.Event, error)
	DeleteEvent(ctx context.Context, callerID, id string) error
}
