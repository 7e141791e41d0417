package worker

import (
	"context"
	"log/slog"
	"time"

	"eventhub/config"
	"eventhub/internal/delivery"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

// RelayParams holds dependencies for the outbox relay, injected by Fx.
type RelayParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	OutboxUC usecase.OutboxUsecase
}

type relay struct {
	outboxUC  usecase.OutboxUsecase
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	*stopper
}

// NewRelay creates the delivery that drains the outbox every poll interval.
func NewRelay(params RelayParams) delivery.Delivery {
	r := &relay{
		outboxUC:  params.OutboxUC,
		interval:  params.Cfg.Outbox.PollInterval,
		batchSize: params.Cfg.Outbox.BatchSize,
		logger:    params.Logger,
		stopper:   newStopper(),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			r.logger.Info("Stopping outbox relay")

			return r.stop(ctx)
		},
	})

	return r
}

// Serve polls until stopped. A full batch is followed by another one right away.
func (r *relay) Serve(ctx context.Context) error {
	ctx, finish := r.run(ctx)
	defer finish()

	r.logger.Info("Starting outbox relay",
		slog.Duration("poll_interval", r.interval),
		slog.Int("batch_size", r.batchSize),
	)

	for {
		r.drain(ctx)
		if !sleep(ctx, r.interval) {
			return nil
		}
	}
}

func (r *relay) drain(ctx context.Context) {
	for ctx.Err() == nil {
		claimed, err := r.outboxUC.RelayBatch(ctx)
		if err != nil {
			if ctx.Err() == nil {
				r.logger.Error("Outbox relay batch failed", slog.Any("error", err))
			}

			return
		}
		if claimed < r.batchSize {
			return
		}
	}
}
