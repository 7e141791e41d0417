package worker

import (
	"context"
	"log/slog"
	"time"

	"eventhub/internal/delivery"
	"eventhub/internal/delivery/worker/handler"
	"eventhub/internal/domain/service"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

const receiveRetryDelay = 5 * time.Second

// ConsumerParams holds dependencies for the pull consumer, injected by Fx.
type ConsumerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Logger     *slog.Logger
	FanoutUC   usecase.FanoutUsecase
	Subscriber service.EventSubscriber `optional:"true"`
}

type consumer struct {
	fanoutUC   usecase.FanoutUsecase
	subscriber service.EventSubscriber
	logger     *slog.Logger
	*stopper
}

// NewConsumer creates the delivery that feeds pulled domain events to the
// fan-out. With a push transport there is no subscriber and Serve returns.
func NewConsumer(params ConsumerParams) delivery.Delivery {
	c := &consumer{
		fanoutUC:   params.FanoutUC,
		subscriber: params.Subscriber,
		logger:     params.Logger,
		stopper:    newStopper(),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if c.subscriber == nil {
				return nil
			}
			c.logger.Info("Stopping domain event consumer")

			return c.stop(ctx)
		},
	})

	return c
}

// Serve receives until stopped, resubscribing after transport failures.
func (c *consumer) Serve(ctx context.Context) error {
	if c.subscriber == nil {
		c.logger.Info("No pull subscriber configured, domain events arrive on the push endpoint")

		return nil
	}

	ctx, finish := c.run(ctx)
	defer finish()

	c.logger.Info("Starting domain event consumer")

	for {
		err := c.subscriber.Receive(ctx, c.handle)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			c.logger.Error("Domain event consumer stopped, resubscribing",
				slog.Duration("delay", receiveRetryDelay),
				slog.Any("error", err),
			)
		}
		if !sleep(ctx, receiveRetryDelay) {
			return nil
		}
	}
}

func (c *consumer) handle(ctx context.Context, event *service.DomainEvent) error {
	ctx, logger := handler.WithEventScope(ctx, c.logger, event)

	created, err := c.fanoutUC.HandleDomainEvent(ctx, event)
	if err != nil {
		return err
	}

	logger.Debug("Domain event processed",
		slog.String("domain_event_id", event.ID),
		slog.String("type", string(event.Type)),
		slog.Int("notifications", created),
	)

	return nil
}
