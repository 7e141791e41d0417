package pubsub

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"eventhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryBus_PublishReceive(t *testing.T) {
	bus := NewMemoryBus()
	publisher := NewMemoryPublisher(bus, discardLogger())
	subscriber := NewMemorySubscriber(bus, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan *service.DomainEvent, 1)
	done := make(chan error, 1)
	go func() {
		done <- subscriber.Receive(ctx, func(_ context.Context, event *service.DomainEvent) error {
			received <- event
			cancel()

			return nil
		})
	}()

	require.NoError(t, publisher.Publish(ctx, sampleEvent()))

	select {
	case event := <-received:
		assert.Equal(t, sampleEvent(), event)
	case <-time.After(5 * time.Second):
		t.Fatal("event was not delivered")
	}
	assert.NoError(t, <-done)
}

func TestMemoryBus_RedeliversOnHandlerError(t *testing.T) {
	bus := NewMemoryBus()
	publisher := NewMemoryPublisher(bus, discardLogger())
	subscriber := NewMemorySubscriber(bus, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var attempts atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- subscriber.Receive(ctx, func(context.Context, *service.DomainEvent) error {
			if attempts.Add(1) == 1 {
				return errors.New("transient")
			}
			cancel()

			return nil
		})
	}()

	require.NoError(t, publisher.Publish(ctx, sampleEvent()))
	assert.NoError(t, <-done)
	assert.GreaterOrEqual(t, attempts.Load(), int32(2))
}
