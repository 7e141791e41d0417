package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

type eventService struct {
	txManager repository.TransactionManager
	eventRepo repository.EventRepository
	orgRepo   repository.OrganizationRepository
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	EventRepo repository.EventRepository
	OrgRepo   repository.OrganizationRepository
	Logger    *slog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		txManager: params.TxManager,
		eventRepo: params.EventRepo,
		orgRepo:   params.OrgRepo,
		logger:    params.Logger,
	}
}

func (s *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateEvent writes the event and its EVENT_PUBLISHED outbox record together.
// Events without a publishing organization have no audience and enqueue nothing.
func (s *eventService) CreateEvent(ctx context.Context, organizerID string, input *usecase.CreateEventInput) (*entity.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrEventTitleMissing
	}
	if !input.StartTime.IsZero() && !input.EndTime.IsZero() && input.EndTime.Before(input.StartTime) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end_time must not be before start_time")
	}

	event := &entity.Event{
		Slug:                   strings.ToLower(strings.TrimSpace(input.Slug)),
		Title:                  title,
		Description:            input.Description,
		OrganizerID:            organizerID,
		PartnerOrganizationIDs: input.PartnerOrganizationIDs,
		StartTime:              input.StartTime.UTC(),
		EndTime:                input.EndTime.UTC(),
		Location:               input.Location,
		Capacity:               input.Capacity,
	}
	if event.PartnerOrganizationIDs == nil {
		event.PartnerOrganizationIDs = []string{}
	}

	if input.OrganizationID != "" {
		org, err := s.orgRepo.FindByID(ctx, input.OrganizationID)
		if err != nil {
			return nil, translateError(err, "failed to find publishing organization",
				mapErr(repository.ErrOrganizationNotFound, domainerrors.ErrOrganizationNotFound))
		}
		if !org.IsMember(organizerID) {
			return nil, domainerrors.ErrNotOrganizationMember
		}
		event.OrganizationID = org.ID
	}

	err := s.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if err := repos.NewEventRepository().Create(txCtx, event); err != nil {
			return translateError(err, "failed to create event",
				mapErr(repository.ErrDuplicateSlug, domainerrors.ErrEventSlugTaken))
		}

		if event.OrganizationID == "" {
			return nil
		}

		record := newOutboxEvent(ctx, entity.DomainEventEventPublished, organizerID)
		record.EventID = event.ID
		record.OrganizationID = event.OrganizationID
		if err := repos.NewOutboxRepository().Enqueue(txCtx, record); err != nil {
			return translateError(err, "failed to enqueue event published")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Event created",
		slog.String("event_id", event.ID),
		slog.String("organization_id", event.OrganizationID),
	)

	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*entity.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "failed to find event",
			mapErr(repository.ErrEventNotFound, domainerrors.ErrEventNotFound))
	}

	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error) {
	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, translateError(err, "failed to list events")
	}

	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, callerID, id string, patch entity.EventPatch) (*entity.Event, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no event field to update")
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, domainerrors.ErrEventTitleMissing
		}
		patch.Title = &title
	}
	if patch.Capacity != nil && *patch.Capacity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("capacity must not be negative")
	}

	event, err := s.ownedEvent(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.eventRepo.Update(ctx, event.ID, patch)
	if err != nil {
		return nil, translateError(err, "failed to update event",
			mapErr(repository.ErrEventNotFound, domainerrors.ErrEventNotFound))
	}

	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, callerID, id string) error {
	event, err := s.ownedEvent(ctx, callerID, id)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, event.ID); err != nil {
		return translateError(err, "failed to delete event",
			mapErr(repository.ErrEventNotFound, domainerrors.ErrEventNotFound))
	}

	s.log(ctx).Info("Event deleted", slog.String("event_id", event.ID))

	return nil
}

// ownedEvent loads an event the caller organizes.
func (s *eventService) ownedEvent(ctx context.Context, callerID, id string) (*entity.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != callerID {
		return nil, domainerrors.ErrNotEventOrganizer
	}

	return event, nil
}
