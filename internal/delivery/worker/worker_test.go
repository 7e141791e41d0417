package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/delivery/worker/handler"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
	mockService "eventhub/internal/mocks/service"
	mockUsecase "eventhub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRelay_DrainsFullBatchesImmediately(t *testing.T) {
	outboxUC := mockUsecase.NewMockOutboxUsecase(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outboxUC.EXPECT().RelayBatch(mock.Anything).Return(2, nil).Once()
	outboxUC.EXPECT().RelayBatch(mock.Anything).
		RunAndReturn(func(context.Context) (int, error) {
			cancel()

			return 1, nil
		}).
		Once()

	r := NewRelay(RelayParams{
		Lc:       fxtest.NewLifecycle(t),
		Cfg:      &config.Config{Outbox: &config.OutboxConfig{PollInterval: time.Hour, BatchSize: 2}},
		Logger:   discardLogger(),
		OutboxUC: outboxUC,
	})

	require.NoError(t, r.Serve(ctx))
}

func TestRelay_StopEndsServe(t *testing.T) {
	outboxUC := mockUsecase.NewMockOutboxUsecase(t)
	outboxUC.EXPECT().RelayBatch(mock.Anything).Return(0, assert.AnError)

	lc := fxtest.NewLifecycle(t)
	r := NewRelay(RelayParams{
		Lc:       lc,
		Cfg:      &config.Config{Outbox: &config.OutboxConfig{PollInterval: time.Hour, BatchSize: 10}},
		Logger:   discardLogger(),
		OutboxUC: outboxUC,
	})

	done := make(chan error, 1)
	go func() { done <- r.Serve(context.Background()) }()

	// Let the first drain run before stopping.
	time.Sleep(20 * time.Millisecond)
	lc.RequireStart().RequireStop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestConsumer_HandlesReceivedEvents(t *testing.T) {
	subscriber := mockService.NewMockEventSubscriber(t)
	fanoutUC := mockUsecase.NewMockFanoutUsecase(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := &service.DomainEvent{ID: "outbox-1", Type: entity.DomainEventConnectionAccepted, RequestID: "req-7"}

	fanoutUC.EXPECT().
		HandleDomainEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-7"
		}), event).
		Return(2, nil).
		Once()
	subscriber.EXPECT().Receive(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, handle service.EventHandler) error {
			assert.NoError(t, handle(ctx, event))
			cancel()

			return ctx.Err()
		}).
		Once()

	c := NewConsumer(ConsumerParams{
		Lc:         fxtest.NewLifecycle(t),
		Logger:     discardLogger(),
		FanoutUC:   fanoutUC,
		Subscriber: subscriber,
	})

	require.NoError(t, c.Serve(ctx))
}

func TestConsumer_HandlerErrorIsReturnedToTransport(t *testing.T) {
	subscriber := mockService.NewMockEventSubscriber(t)
	fanoutUC := mockUsecase.NewMockFanoutUsecase(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fanoutUC.EXPECT().HandleDomainEvent(mock.Anything, mock.Anything).Return(0, assert.AnError).Once()
	subscriber.EXPECT().Receive(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, handle service.EventHandler) error {
			assert.ErrorIs(t, handle(ctx, &service.DomainEvent{ID: "outbox-2"}), assert.AnError)
			cancel()

			return nil
		}).
		Once()

	c := NewConsumer(ConsumerParams{
		Lc:         fxtest.NewLifecycle(t),
		Logger:     discardLogger(),
		FanoutUC:   fanoutUC,
		Subscriber: subscriber,
	})

	require.NoError(t, c.Serve(ctx))
}

func TestConsumer_WithoutSubscriberReturns(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	c := NewConsumer(ConsumerParams{
		Lc:       lc,
		Logger:   discardLogger(),
		FanoutUC: mockUsecase.NewMockFanoutUsecase(t),
	})

	require.NoError(t, c.Serve(context.Background()))
	lc.RequireStart().RequireStop()
}

func TestSleep(t *testing.T) {
	assert.True(t, sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sleep(ctx, time.Hour))
}

func TestNewEcho_Health(t *testing.T) {
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:   &config.Config{},
		Logger:   discardLogger(),
		FanoutUC: mockUsecase.NewMockFanoutUsecase(t),
	})
	e := NewEcho(&config.Config{}, discardLogger(), pushHandler)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
