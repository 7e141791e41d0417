package impl

import (
	"context"
	"log/slog"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

type feedbackService struct {
	feedbackRepo     repository.FeedbackRepository
	eventRepo        repository.EventRepository
	registrationRepo repository.RegistrationRepository
	logger           *slog.Logger
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo     repository.FeedbackRepository
	EventRepo        repository.EventRepository
	RegistrationRepo repository.RegistrationRepository
	Logger           *slog.Logger
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo:     params.FeedbackRepo,
		eventRepo:        params.EventRepo,
		registrationRepo: params.RegistrationRepo,
		logger:           params.Logger,
	}
}

func (s *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, userID, eventID string, input *usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if _, err := s.registrationRepo.FindByEventAndUser(ctx, event.ID, userID); err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrFeedbackNotRegistered
		}

		return nil, translateError(err, "failed to find registration")
	}

	feedback := &entity.Feedback{
		EventID:   event.ID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Anonymous: input.Anonymous,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, translateError(err, "failed to create feedback",
			mapErr(repository.ErrDuplicateFeedback, domainerrors.ErrFeedbackAlreadyExists))
	}

	s.log(ctx).Info("Feedback submitted", slog.String("event_id", event.ID), slog.Int("rating", feedback.Rating))

	return feedback, nil
}

// ListFeedback returns a page of entries plus the count and average over all of them.
func (s *feedbackService) ListFeedback(ctx context.Context, eventID string, page repository.Page) (*entity.FeedbackSummary, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	items, err := s.feedbackRepo.List(ctx, repository.FeedbackFilter{EventID: event.ID, Page: page})
	if err != nil {
		return nil, translateError(err, "failed to list feedback")
	}

	count, average, err := s.feedbackRepo.Stats(ctx, event.ID)
	if err != nil {
		return nil, translateError(err, "failed to compute feedback stats")
	}

	for _, item := range items {
		if item.Anonymous {
			item.UserID = ""
		}
	}

	return &entity.FeedbackSummary{
		EventID:       event.ID,
		Count:         count,
		AverageRating: average,
		Items:         items,
	}, nil
}

func (s *feedbackService) findEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, translateError(err, "failed to find event",
			mapErr(repository.ErrEventNotFound, domainerrors.ErrEventNotFound))
	}

	return event, nil
}
