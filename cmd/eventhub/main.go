package main

import (
	"context"
	"log/slog"
	"os"

	"eventhub/config"
	"eventhub/internal/delivery"
	"eventhub/internal/delivery/api"
	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router/handler"
	"eventhub/internal/delivery/worker"
	"eventhub/internal/infra/auth"
	logs "eventhub/internal/infra/log"
	"eventhub/internal/infra/notification"
	persistence "eventhub/internal/infra/persistence/mongo"
	"eventhub/internal/infra/pubsub"
	"eventhub/internal/infra/qrcode"
	"eventhub/internal/infra/telemetry"
	"eventhub/internal/usecase/impl"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			ensureIndexes,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			persistence.NewClient,
			persistence.NewDatabase,
		),
		telemetry.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewUserRepository,
			persistence.NewEventRepository,
			persistence.NewOrganizationRepository,
			persistence.NewRegistrationRepository,
			persistence.NewConnectionRepository,
			persistence.NewSubscriptionRepository,
			persistence.NewBadgeRepository,
			persistence.NewFeedbackRepository,
			persistence.NewNotificationRepository,
			persistence.NewDeviceRepository,
			persistence.NewOutboxRepository,
			persistence.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewFirebaseService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewEventService,
			impl.NewOrganizationService,
			impl.NewRegistrationService,
			impl.NewConnectionService,
			impl.NewSubscriptionService,
			impl.NewBadgeService,
			impl.NewFeedbackService,
			impl.NewNotificationService,
			impl.NewDeviceService,
			impl.NewFanoutService,
			impl.NewOutboxService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewEventHandler,
			handler.NewRegistrationHandler,
			handler.NewFeedbackHandler,
			handler.NewConnectionHandler,
			handler.NewOrganizationHandler,
			handler.NewSubscriptionHandler,
			handler.NewBadgeHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newEmbeddedWorkers,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

type embeddedWorkerParams struct {
	fx.In

	Cfg      *config.Config
	Relay    worker.RelayParams
	Consumer worker.ConsumerParams
}

// newEmbeddedWorkers runs the outbox relay and the pull consumer inside the
// API process when outbox.embedded is set.
func newEmbeddedWorkers(params embeddedWorkerParams) []delivery.Delivery {
	if !params.Cfg.Outbox.Embedded {
		return nil
	}

	return []delivery.Delivery{
		worker.NewRelay(params.Relay),
		worker.NewConsumer(params.Consumer),
	}
}

func ensureIndexes(lc fx.Lifecycle, db *mongo.Database, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Ensuring store indexes")

			return persistence.EnsureIndexes(ctx, db)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
