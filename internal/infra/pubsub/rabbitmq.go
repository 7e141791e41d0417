package pubsub

import (
	"context"
	"log/slog"

	"eventhub/config"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

// routingKeys are the domain event types the fan-out queue is bound to.
var routingKeys = []string{
	string(entity.DomainEventEventPublished),
	string(entity.DomainEventRegistrationCreated),
	string(entity.DomainEventConnectionAccepted),
}

// dialExchange opens a channel and declares the durable topic exchange.
func dialExchange(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errors.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, nil, errors.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, nil, errors.Wrap(err, "declare exchange")
	}

	return conn, ch, nil
}

func closeChannel(conn *amqp.Connection, ch *amqp.Channel) error {
	if ch != nil {
		_ = ch.Close()
	}
	if conn != nil {
		return conn.Close()
	}

	return nil
}

type rabbitMQPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewRabbitMQPublisher publishes domain events with their type as routing key.
func NewRabbitMQPublisher(cfg config.RabbitMQConfig, logger *slog.Logger) (service.EventPublisher, error) {
	conn, ch, err := dialExchange(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{conn: conn, ch: ch, exchange: cfg.Exchange, logger: logger}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	data, attributes, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for key, value := range attributes {
		headers[key] = value
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Headers:      headers,
		Body:         data,
	})
	if err != nil {
		return errors.Wrap(err, "publish to rabbitmq")
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("domain_event_id", event.ID),
		slog.String("type", string(event.Type)),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return closeChannel(p.conn, p.ch)
}

type rabbitMQSubscriber struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	logger *slog.Logger
}

// NewRabbitMQSubscriber declares the durable fan-out queue and binds it to
// every domain event type.
func NewRabbitMQSubscriber(cfg config.RabbitMQConfig, logger *slog.Logger) (service.EventSubscriber, error) {
	conn, ch, err := dialExchange(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}

	q, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		_ = closeChannel(conn, ch)

		return nil, errors.Wrap(err, "declare queue")
	}
	for _, key := range routingKeys {
		if err := ch.QueueBind(q.Name, key, cfg.Exchange, false, nil); err != nil {
			_ = closeChannel(conn, ch)

			return nil, errors.Wrapf(err, "bind %s", key)
		}
	}
	if cfg.Prefetch > 0 {
		if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
			_ = closeChannel(conn, ch)

			return nil, errors.Wrap(err, "set prefetch")
		}
	}

	return &rabbitMQSubscriber{conn: conn, ch: ch, queue: q.Name, logger: logger}, nil
}

// Receive consumes with manual acks: handled messages are acked, failed ones
// requeued, malformed ones rejected without requeue.
func (s *rabbitMQSubscriber) Receive(ctx context.Context, handler service.EventHandler) error {
	deliveries, err := s.ch.ConsumeWithContext(ctx, s.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "consume")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}

				return errors.New("rabbitmq delivery channel closed")
			}
			s.handle(ctx, d, handler)
		}
	}
}

func (s *rabbitMQSubscriber) handle(ctx context.Context, d amqp.Delivery, handler service.EventHandler) {
	attributes := map[string]string{}
	for key, value := range d.Headers {
		if str, ok := value.(string); ok {
			attributes[key] = str
		}
	}

	event, err := DecodeEvent(d.Body, attributes)
	if err != nil {
		s.logger.Error("[RabbitMQ] Dropping malformed message", slog.Any("error", err))
		_ = d.Reject(false)

		return
	}

	if err := handler(ctx, event); err != nil {
		s.logger.Warn("[RabbitMQ] Handler failed, requeueing",
			slog.String("domain_event_id", event.ID),
			slog.Any("error", err),
		)
		_ = d.Nack(false, true)

		return
	}
	_ = d.Ack(false)
}

func (s *rabbitMQSubscriber) Close() error {
	return closeChannel(s.conn, s.ch)
}
