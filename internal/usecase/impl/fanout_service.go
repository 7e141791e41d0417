package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"
	"eventhub/internal/util"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const someone = "Someone"

type fanoutService struct {
	eventRepo        repository.EventRepository
	orgRepo          repository.OrganizationRepository
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	connectionRepo   repository.ConnectionRepository
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushSvc          service.NotificationService
	dates            *util.DateFormatter
	tracer           trace.Tracer
	logger           *slog.Logger
}

// FanoutServiceParams holds dependencies for FanoutService, injected by Fx.
type FanoutServiceParams struct {
	fx.In

	EventRepo        repository.EventRepository
	OrgRepo          repository.OrganizationRepository
	UserRepo         repository.UserRepository
	SubscriptionRepo repository.SubscriptionRepository
	ConnectionRepo   repository.ConnectionRepository
	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	PushService      service.NotificationService `optional:"true"`
	Config           *config.Config
	Tracer           trace.Tracer
	Logger           *slog.Logger
}

// NewFanoutService creates the service that turns domain events into notifications.
func NewFanoutService(params FanoutServiceParams) (usecase.FanoutUsecase, error) {
	notificationCfg := params.Config.Notification
	if notificationCfg == nil {
		notificationCfg = &config.NotificationConfig{}
	}

	dates, err := util.NewDateFormatter(notificationCfg.Locale, notificationCfg.DateFormat, notificationCfg.TimeZone)
	if err != nil {
		return nil, errors.Wrap(err, "invalid notification config")
	}

	return &fanoutService{
		eventRepo:        params.EventRepo,
		orgRepo:          params.OrgRepo,
		userRepo:         params.UserRepo,
		subscriptionRepo: params.SubscriptionRepo,
		connectionRepo:   params.ConnectionRepo,
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		pushSvc:          params.PushService,
		dates:            dates,
		tracer:           params.Tracer,
		logger:           params.Logger,
	}, nil
}

func (s *fanoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// message is the text shared by every notification of one domain event.
type message struct {
	kind    entity.NotificationType
	title   string
	content string
	eventID string
}

// HandleDomainEvent inserts one notification per audience member and pushes
// the newly inserted ones. Redelivered events insert nothing new.
func (s *fanoutService) HandleDomainEvent(ctx context.Context, event *service.DomainEvent) (int, error) {
	ctx, span := s.tracer.Start(ctx, "fanout.HandleDomainEvent", trace.WithAttributes(
		attribute.String("domain_event.id", event.ID),
		attribute.String("domain_event.type", string(event.Type)),
	))
	defer span.End()

	logger := s.log(ctx).With(
		slog.String("domain_event_id", event.ID),
		slog.String("domain_event_type", string(event.Type)),
	)

	msg, audience, err := s.resolve(ctx, event)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return 0, err
	}
	if msg == nil || len(audience) == 0 {
		logger.Debug("Domain event has no audience")

		return 0, nil
	}

	notifications := make([]*entity.Notification, 0, len(audience))
	for _, recipientID := range audience {
		notifications = append(notifications, &entity.Notification{
			RecipientID: recipientID,
			SenderID:    event.ActorID,
			Type:        msg.kind,
			Title:       msg.title,
			Content:     msg.content,
			EventID:     msg.eventID,
			DedupeKey:   entity.NotificationDedupeKey(event.ID, recipientID),
		})
	}

	inserted, err := s.notificationRepo.InsertMany(ctx, notifications)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return 0, errors.Wrap(err, "failed to insert notifications")
	}
	span.SetAttributes(attribute.Int("fanout.audience", len(audience)), attribute.Int("fanout.inserted", inserted))

	logger.Info("Notifications created",
		slog.Int("audience", len(audience)),
		slog.Int("inserted", inserted),
	)

	if inserted > 0 {
		s.push(ctx, notifications, msg)
	}

	return inserted, nil
}

// resolve returns the notification text and the recipients of event. A nil
// message means the event no longer notifies anybody.
func (s *fanoutService) resolve(ctx context.Context, event *service.DomainEvent) (*message, []string, error) {
	switch event.Type {
	case entity.DomainEventEventPublished:
		return s.resolveEventPublished(ctx, event)
	case entity.DomainEventRegistrationCreated:
		return s.resolveRegistrationCreated(ctx, event)
	case entity.DomainEventConnectionAccepted:
		return s.resolveConnectionAccepted(ctx, event)
	default:
		s.log(ctx).Warn("Unknown domain event type", slog.String("type", string(event.Type)))

		return nil, nil, nil
	}
}

func (s *fanoutService) resolveEventPublished(ctx context.Context, event *service.DomainEvent) (*message, []string, error) {
	published, err := s.findEvent(ctx, event.EventID)
	if err != nil || published == nil {
		return nil, nil, err
	}

	orgID := published.OrganizationID
	if orgID == "" {
		orgID = event.OrganizationID
	}
	if orgID == "" {
		return nil, nil, nil
	}

	publisher := "An organization you follow"
	org, err := s.orgRepo.FindByID(ctx, orgID)
	switch {
	case err == nil:
		publisher = org.Name
	case !errors.Is(err, repository.ErrOrganizationNotFound):
		return nil, nil, errors.Wrap(err, "failed to find organization")
	}

	subscribers, err := s.subscriptionRepo.ListSubscriberIDs(ctx, orgID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list subscribers")
	}

	return &message{
		kind:    entity.NotificationTypeNewEvent,
		title:   "New event: " + published.Title,
		content: fmt.Sprintf("%s published %s on %s", publisher, published.Title, s.dates.Format(published.StartTime)),
		eventID: published.ID,
	}, subscribers, nil
}

func (s *fanoutService) resolveRegistrationCreated(ctx context.Context, event *service.DomainEvent) (*message, []string, error) {
	joined, err := s.findEvent(ctx, event.EventID)
	if err != nil || joined == nil {
		return nil, nil, err
	}

	peers, err := s.connectionRepo.ListAcceptedPeerIDs(ctx, event.ActorID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list friends")
	}

	friends := make([]string, 0, len(peers))
	for _, peer := range peers {
		if peer != "" && !strings.EqualFold(peer, event.ActorID) {
			friends = append(friends, peer)
		}
	}

	name, err := s.userName(ctx, event.ActorID)
	if err != nil {
		return nil, nil, err
	}

	return &message{
		kind:    entity.NotificationTypeJoinedEvent,
		title:   name + " joined an event",
		content: fmt.Sprintf("%s is going to %s on %s", name, joined.Title, s.dates.Format(joined.StartTime)),
		eventID: joined.ID,
	}, friends, nil
}

func (s *fanoutService) resolveConnectionAccepted(ctx context.Context, event *service.DomainEvent) (*message, []string, error) {
	if event.RecipientID == "" || event.RecipientID == event.ActorID {
		return nil, nil, nil
	}

	name, err := s.userName(ctx, event.ActorID)
	if err != nil {
		return nil, nil, err
	}

	return &message{
		kind:    entity.NotificationTypeFriendRequest,
		title:   "Connection accepted",
		content: name + " accepted your connection request",
	}, []string{event.RecipientID}, nil
}

// findEvent returns nil when the event was deleted in the meantime.
func (s *fanoutService) findEvent(ctx context.Context, id string) (*entity.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if errors.IsAny(err, repository.ErrEventNotFound, repository.ErrInvalidID) {
		s.log(ctx).Warn("Event of domain event is gone", slog.String("event_id", id))

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

func (s *fanoutService) userName(ctx context.Context, id string) (string, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.IsAny(err, repository.ErrUserNotFound, repository.ErrInvalidID) {
		return someone, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to find user")
	}
	if user.Name == "" {
		return someone, nil
	}

	return user.Name, nil
}

// push sends the message to the active devices of every freshly inserted
// recipient. Failures are logged only.
func (s *fanoutService) push(ctx context.Context, notifications []*entity.Notification, msg *message) {
	if s.pushSvc == nil {
		return
	}

	recipients := make([]string, 0, len(notifications))
	for _, notification := range notifications {
		if notification.ID != "" {
			recipients = append(recipients, notification.RecipientID)
		}
	}

	logger := s.log(ctx)

	devices, err := s.deviceRepo.ListActiveByUsers(ctx, recipients)
	if err != nil {
		logger.Error("Failed to load devices for push", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{"type": string(msg.kind)}
	if msg.eventID != "" {
		data["event_id"] = msg.eventID
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)

	for i := 0; i < len(tokens); i += constants.FirebaseBatchSize {
		end := min(i+constants.FirebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		result, err := s.pushSvc.Push(ctx, &service.PushMessage{
			Tokens: batch,
			Title:  msg.title,
			Body:   msg.content,
			Data:   data,
		})
		if err != nil {
			logger.Error("Failed to send push batch", slog.Any("error", err), slog.Int("batch_size", len(batch)))
			totalFailed += len(batch)

			continue
		}

		totalSent += result.Sent
		totalFailed += result.Failed
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			logger.Error("Failed to deactivate invalid devices", slog.Any("error", err))
		} else {
			logger.Info("Deactivated devices with invalid tokens", slog.Int64("count", deactivated))
		}
	}

	logger.Info("Push notifications sent", slog.Int("sent", totalSent), slog.Int("failed", totalFailed))
}
