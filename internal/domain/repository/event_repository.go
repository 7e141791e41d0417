package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// Domain-specific errors for event persistence.
var (
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrDuplicateSlug is returned when a slug is already used in the collection.
	ErrDuplicateSlug = errors.New("slug already exists")
)

// EventRepository defines the operations for event persistence.
type EventRepository interface {
	// Create persists a new event and sets its ID.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID retrieves an event by store id, falling back to the slug.
	FindByID(ctx context.Context, id string) (*entity.Event, error)

	// List returns events ordered by start time. Proximity searches fill DistanceKm.
	List(ctx context.Context, filter EventFilter) ([]*entity.Event, error)

	// Update applies patch and returns the updated event.
	Update(ctx context.Context, id string, patch entity.EventPatch) (*entity.Event, error)

	// Delete removes an event.
	Delete(ctx context.Context, id string) error
}
