package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
)

// RegistrationStatus is the workflow state of a user for an event.
type RegistrationStatus struct {
	EventID      string                   `json:"event_id"`
	UserID       string                   `json:"user_id"`
	State        entity.RegistrationState `json:"state"`
	Registration *entity.Registration     `json:"registration,omitempty"`
}

// RegistrationUsecase defines the registration and check-in workflow
type RegistrationUsecase interface {
	// Register signs userID up for an event and enqueues the notification
	// of the user's friends.
	Register(ctx context.Context, userID, eventID string, responses map[string]string) (*entity.Registration, error)

	GetStatus(ctx context.Context, userID, eventID string) (*RegistrationStatus, error)

	// CheckInQR renders the PNG QR code a registrant shows at the entrance.
	CheckInQR(ctx context.Context, userID, eventID string) ([]byte, error)

	// ListAttendees and the check-in operations are allowed to the event
	// organizer and to managers of the event's organization.
	ListAttendees(ctx context.Context, callerID, eventID string, filter repository.RegistrationFilter) ([]*entity.Registration, error)
	CheckIn(ctx context.Context, callerID, eventID, userID string) (*entity.Registration, error)
	CheckInByQR(ctx context.Context, callerID, eventID, qrData string) (*entity.Registration, error)
}
