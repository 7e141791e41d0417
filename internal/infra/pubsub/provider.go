package pubsub

import (
	"context"
	"log/slog"

	"eventhub/config"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops events when no bus is configured. The outbox still
// records them, so nothing is lost once a provider is set.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(_ context.Context, event *service.DomainEvent) error {
	p.logger.Debug("Event bus disabled, event not published",
		slog.String("domain_event_id", event.ID),
		slog.String("type", string(event.Type)),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Bus    *MemoryBus
}

type publisherBuilder func(params PublisherParams, cfg *config.PubSubConfig) (service.EventPublisher, error)

//nolint:gochecknoglobals
var publisherBuilders = map[string]publisherBuilder{
	constants.PubSubProviderMemory: func(p PublisherParams, _ *config.PubSubConfig) (service.EventPublisher, error) {
		return NewMemoryPublisher(p.Bus, p.Logger), nil
	},
	constants.PubSubProviderLocal: func(p PublisherParams, cfg *config.PubSubConfig) (service.EventPublisher, error) {
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, p.Logger), nil
	},
	constants.PubSubProviderGoogle: func(p PublisherParams, cfg *config.PubSubConfig) (service.EventPublisher, error) {
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(p.Ctx, cfg.ProjectID, cfg.TopicID, p.Logger)
	},
	constants.PubSubProviderRabbitMQ: func(p PublisherParams, cfg *config.PubSubConfig) (service.EventPublisher, error) {
		if cfg.RabbitMQ.URL == "" || cfg.RabbitMQ.Exchange == "" {
			return nil, errors.New("pubsub.rabbitmq.url and pubsub.rabbitmq.exchange are required for the rabbitmq provider")
		}

		return NewRabbitMQPublisher(cfg.RabbitMQ, p.Logger)
	},
}

// NewEventPublisher selects the publisher of pubsub.provider and closes it
// on shutdown. An empty provider yields a publisher that drops events.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Event bus not configured, publishing disabled")

		return &noopPublisher{logger: params.Logger}, nil
	}

	build, ok := publisherBuilders[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
	publisher, err := build(params, cfg)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Event publisher ready", slog.String("provider", cfg.Provider))
	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

type SubscriberParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Bus    *MemoryBus
}

// NewEventSubscriber returns the pull subscriber of the configured provider.
// Push providers (local, google) deliver to the worker endpoint and get nil.
func NewEventSubscriber(params SubscriberParams) (service.EventSubscriber, error) {
	cfg := params.Config.PubSub
	if cfg == nil {
		return nil, nil
	}

	var (
		subscriber service.EventSubscriber
		err        error
	)
	switch cfg.Provider {
	case constants.PubSubProviderMemory:
		subscriber = NewMemorySubscriber(params.Bus, params.Logger)
	case constants.PubSubProviderRabbitMQ:
		if cfg.RabbitMQ.Queue == "" {
			return nil, errors.New("pubsub.rabbitmq.queue is required to consume from rabbitmq")
		}
		if subscriber, err = NewRabbitMQSubscriber(cfg.RabbitMQ, params.Logger); err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	params.Lc.Append(fx.StopHook(subscriber.Close))

	return subscriber, nil
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewMemoryBus,
		NewEventPublisher,
		NewEventSubscriber,
	),
)
