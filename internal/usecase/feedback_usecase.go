package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
)

// SubmitFeedbackInput is a review of an event.
type SubmitFeedbackInput struct {
	Rating    int    `json:"rating"`
	Comment   string `json:"comment" validate:"max=2000"`
	Anonymous bool   `json:"anonymous"`
}

// FeedbackUsecase defines the interface for event feedback
type FeedbackUsecase interface {
	// SubmitFeedback is allowed once per registered attendee.
	SubmitFeedback(ctx context.Context, userID, eventID string, input *SubmitFeedbackInput) (*entity.Feedback, error)

	// ListFeedback hides the author of anonymous entries.
	ListFeedback(ctx context.Context, eventID string, page repository.Page) (*entity.FeedbackSummary, error)
}
