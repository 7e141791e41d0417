package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// ErrDuplicateFeedback is returned when the user already reviewed the event.
var ErrDuplicateFeedback = errors.New("feedback already exists")

// FeedbackRepository defines the operations for feedback persistence.
type FeedbackRepository interface {
	// Create persists feedback. The store enforces one per (event, user).
	Create(ctx context.Context, feedback *entity.Feedback) error

	// List returns the newest feedback first.
	List(ctx context.Context, filter FeedbackFilter) ([]*entity.Feedback, error)

	// Stats returns the number of entries and the average rating of an event.
	Stats(ctx context.Context, eventID string) (count int, average float64, err error)
}
