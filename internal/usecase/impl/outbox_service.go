package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"eventhub/config"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"
	"eventhub/internal/util"

	"github.com/flowchartsman/retry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	publishRetryDelay    = 100 * time.Millisecond
	publishRetryMaxDelay = time.Second
)

type outboxService struct {
	outboxRepo repository.OutboxRepository
	publisher  service.EventPublisher
	cfg        config.OutboxConfig
	tracer     trace.Tracer
	logger     *slog.Logger
	now        func() time.Time
}

// OutboxServiceParams holds dependencies for OutboxService, injected by Fx.
type OutboxServiceParams struct {
	fx.In

	OutboxRepo repository.OutboxRepository
	Publisher  service.EventPublisher
	Config     *config.Config
	Tracer     trace.Tracer
	Logger     *slog.Logger
}

// NewOutboxService creates the relay that moves outbox records onto the event bus.
func NewOutboxService(params OutboxServiceParams) usecase.OutboxUsecase {
	var cfg config.OutboxConfig
	if params.Config != nil && params.Config.Outbox != nil {
		cfg = *params.Config.Outbox
	}

	return &outboxService{
		outboxRepo: params.OutboxRepo,
		publisher:  params.Publisher,
		cfg:        cfg,
		tracer:     params.Tracer,
		logger:     params.Logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// RelayBatch claims due records and publishes them concurrently. It returns
// how many were dispatched. Publish failures are rescheduled, not returned.
func (s *outboxService) RelayBatch(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "outbox.RelayBatch")
	defer span.End()

	records, err := s.outboxRepo.Claim(ctx, s.now(), s.cfg.Lease, s.cfg.BatchSize)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return 0, errors.Wrap(err, "failed to claim outbox records")
	}
	span.SetAttributes(attribute.Int("outbox.claimed", len(records)))
	if len(records) == 0 {
		return 0, nil
	}

	var dispatched atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(max(s.cfg.Concurrency, 1))

	for _, record := range records {
		g.Go(func() error {
			ok, err := s.dispatch(ctx, record)
			if ok {
				dispatched.Add(1)
			}

			return err
		})
	}

	err = g.Wait()
	span.SetAttributes(attribute.Int64("outbox.dispatched", dispatched.Load()))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return int(dispatched.Load()), errors.Wrap(err, "failed to settle outbox records")
	}

	return int(dispatched.Load()), nil
}

// dispatch publishes one record and settles it. The returned error is only
// set when the outcome could not be stored.
func (s *outboxService) dispatch(ctx context.Context, record *entity.OutboxEvent) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "outbox.dispatch", trace.WithAttributes(
		attribute.String("outbox.id", record.ID),
		attribute.String("outbox.type", string(record.Type)),
	))
	defer span.End()

	logger := s.logger.With(
		slog.String("outbox_id", record.ID),
		slog.String("type", string(record.Type)),
		slog.String("request_id", record.RequestID),
	)

	event := service.NewDomainEvent(record)
	retrier := retry.NewRetrier(max(s.cfg.PublishRetries, 1), publishRetryDelay, publishRetryMaxDelay)
	var publishErr error
	if err := retrier.RunContext(ctx, func(ctx context.Context) error {
		publishErr = s.publisher.Publish(ctx, event)

		return publishErr
	}); err != nil && publishErr == nil {
		publishErr = err
	}

	if publishErr == nil {
		if err := s.outboxRepo.MarkDispatched(ctx, record.ID, s.now()); err != nil {
			return true, errors.Wrapf(err, "failed to mark %s dispatched", record.ID)
		}
		logger.Debug("Outbox record dispatched")

		return true, nil
	}

	span.RecordError(publishErr)
	span.SetStatus(codes.Error, publishErr.Error())

	attempts := record.Attempts + 1
	if attempts >= s.cfg.MaxAttempts {
		logger.Error("Outbox record is dead",
			slog.Int("attempts", attempts),
			slog.Any("error", publishErr),
		)
		if err := s.outboxRepo.MarkDead(ctx, record.ID, attempts, publishErr.Error()); err != nil {
			return false, errors.Wrapf(err, "failed to mark %s dead", record.ID)
		}

		return false, nil
	}

	delay := s.backoff(attempts)
	availableAt := s.now().Add(delay)
	logger.Warn("Outbox publish failed, rescheduled",
		slog.Int("attempts", attempts),
		slog.String("retry_in", util.FormatDuration(delay)),
		slog.Time("available_at", availableAt),
		slog.Any("error", publishErr),
	)
	if err := s.outboxRepo.Reschedule(ctx, record.ID, attempts, availableAt, publishErr.Error()); err != nil {
		return false, errors.Wrapf(err, "failed to reschedule %s", record.ID)
	}

	return false, nil
}

// backoff doubles from BaseBackoff per attempt, capped at MaxBackoff.
func (s *outboxService) backoff(attempts int) time.Duration {
	delay := s.cfg.BaseBackoff
	for i := 1; i < attempts; i++ {
		delay *= 2
		if s.cfg.MaxBackoff > 0 && delay >= s.cfg.MaxBackoff {
			return s.cfg.MaxBackoff
		}
	}
	if s.cfg.MaxBackoff > 0 && delay > s.cfg.MaxBackoff {
		return s.cfg.MaxBackoff
	}

	return delay
}
