package repository

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// Domain-specific errors for registration persistence.
var (
	// ErrRegistrationNotFound is returned when no registration exists for the lookup.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrDuplicateRegistration is returned when the (event, user) pair is already registered.
	ErrDuplicateRegistration = errors.New("registration already exists")
)

// RegistrationRepository defines the operations for registration persistence.
type RegistrationRepository interface {
	// Create persists a registration. The store enforces one per (event, user).
	Create(ctx context.Context, registration *entity.Registration) error

	// FindByEventAndUser retrieves the registration of userID for eventID.
	FindByEventAndUser(ctx context.Context, eventID, userID string) (*entity.Registration, error)

	// List returns registrations ordered by creation time.
	List(ctx context.Context, filter RegistrationFilter) ([]*entity.Registration, error)

	// CountByEvent returns how many users registered for eventID.
	CountByEvent(ctx context.Context, eventID string) (int64, error)

	// MarkCheckedIn sets the check-in flag and time of an existing registration.
	// Repeating the call overwrites the timestamp and never creates a document.
	MarkCheckedIn(ctx context.Context, eventID, userID string, at time.Time) (*entity.Registration, error)
}
