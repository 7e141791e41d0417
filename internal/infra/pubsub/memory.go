package pubsub

import (
	"context"
	"log/slog"
	"time"

	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	cdkpubsub "gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

const memoryAckDeadline = 30 * time.Second

// MemoryBus is an in-process topic with one subscription. Publisher and
// subscriber share it, so both must run in the same process.
type MemoryBus struct {
	topic        *cdkpubsub.Topic
	subscription *cdkpubsub.Subscription
}

// NewMemoryBus creates the in-process topic and its subscription.
func NewMemoryBus() *MemoryBus {
	topic := mempubsub.NewTopic()

	return &MemoryBus{
		topic:        topic,
		subscription: mempubsub.NewSubscription(topic, memoryAckDeadline),
	}
}

type memoryPublisher struct {
	bus    *MemoryBus
	logger *slog.Logger
}

// NewMemoryPublisher publishes onto the in-process topic.
func NewMemoryPublisher(bus *MemoryBus, logger *slog.Logger) service.EventPublisher {
	return &memoryPublisher{bus: bus, logger: logger}
}

func (p *memoryPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	data, attributes, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	if err := p.bus.topic.Send(ctx, &cdkpubsub.Message{Body: data, Metadata: attributes}); err != nil {
		return errors.Wrap(err, "failed to send to memory topic")
	}

	p.logger.Debug("[MemoryPubSub] Event published",
		slog.String("domain_event_id", event.ID),
		slog.String("type", string(event.Type)),
	)

	return nil
}

func (p *memoryPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	return p.bus.topic.Shutdown(ctx)
}

type memorySubscriber struct {
	bus    *MemoryBus
	logger *slog.Logger
}

// NewMemorySubscriber receives from the in-process subscription.
func NewMemorySubscriber(bus *MemoryBus, logger *slog.Logger) service.EventSubscriber {
	return &memorySubscriber{bus: bus, logger: logger}
}

// Receive acks handled messages and nacks failed ones so they are redelivered.
// Malformed messages are acked and dropped.
func (s *memorySubscriber) Receive(ctx context.Context, handler service.EventHandler) error {
	for {
		msg, err := s.bus.subscription.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to receive from memory subscription")
		}

		event, err := DecodeEvent(msg.Body, msg.Metadata)
		if err != nil {
			s.logger.Error("[MemoryPubSub] Dropping malformed message", slog.Any("error", err))
			msg.Ack()

			continue
		}

		if err := handler(ctx, event); err != nil {
			s.logger.Warn("[MemoryPubSub] Handler failed, message will be redelivered",
				slog.String("domain_event_id", event.ID),
				slog.Any("error", err),
			)
			if msg.Nackable() {
				msg.Nack()
			}

			continue
		}
		msg.Ack()
	}
}

func (s *memorySubscriber) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	return s.bus.subscription.Shutdown(ctx)
}
