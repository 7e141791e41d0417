// Package mongo contains the concrete implementation of the persistence layer using MongoDB.
package mongo

import (
	"context"
	"log/slog"

	"eventhub/config"
	"eventhub/internal/domain/lifecycle"
	"eventhub/internal/errors"

	"go.mongodb.org/mongo-driver/v2/event"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the pooled MongoDB client shared by every repository.
// The client pings the server and ensures indexes on start and disconnects on stop.
func NewClient(params Params) (*mongo.Client, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.OperationTimeout).
		SetPoolMonitor(newPoolMonitor(params.Logger))
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
		opts.SetServerSelectionTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return storeError(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, client.Database(cfg.Database)); err != nil {
				return err
			}
			params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return client, nil
}

// NewDatabase returns the configured database handle.
func NewDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}

// Pool event types, as reported in event.PoolEvent.Type.
const (
	poolCheckOutFailed = "ConnectionCheckOutFailed"
	poolCleared        = "ConnectionPoolCleared"
)

// newPoolMonitor reports connection pool trouble, which usually precedes
// STORE_UNAVAILABLE responses.
func newPoolMonitor(logger *slog.Logger) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case poolCheckOutFailed:
				logger.LogAttrs(context.Background(), slog.LevelWarn, "MongoDB connection checkout failed",
					slog.String("address", evt.Address),
					slog.String("reason", evt.Reason),
					slog.Duration("waited", evt.Duration),
				)
			case poolCleared:
				logger.LogAttrs(context.Background(), slog.LevelWarn, "MongoDB connection pool cleared",
					slog.String("address", evt.Address),
				)
			}
		},
	}
}
