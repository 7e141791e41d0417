package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"eventhub/config"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

var relayNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type outboxServiceFixtures struct {
	service    *outboxService
	outboxRepo *mockRepo.MockOutboxRepository
	publisher  *mockSvc.MockEventPublisher
}

func createTestOutboxService(t *testing.T, publishRetries int) outboxServiceFixtures {
	outboxRepo := mockRepo.NewMockOutboxRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewOutboxService(OutboxServiceParams{
		OutboxRepo: outboxRepo,
		Publisher:  publisher,
		Config: &config.Config{Outbox: &config.OutboxConfig{
			BatchSize:      10,
			Concurrency:    2,
			MaxAttempts:    3,
			Lease:          time.Minute,
			BaseBackoff:    time.Second,
			MaxBackoff:     5 * time.Second,
			PublishRetries: publishRetries,
		}},
		Tracer: noop.NewTracerProvider().Tracer("test"),
		Logger: newDiscardLogger(),
	}).(*outboxService)
	svc.now = func() time.Time { return relayNow }

	return outboxServiceFixtures{
		service:    svc,
		outboxRepo: outboxRepo,
		publisher:  publisher,
	}
}

func TestOutboxService_RelayBatch_Dispatches(t *testing.T) {
	fx := createTestOutboxService(t, 1)

	records := []*entity.OutboxEvent{
		{ID: "ob1", Type: entity.DomainEventEventPublished, EventID: "e1"},
		{ID: "ob2", Type: entity.DomainEventRegistrationCreated, EventID: "e1", ActorID: "u1"},
	}
	fx.outboxRepo.EXPECT().Claim(mock.Anything, relayNow, time.Minute, 10).Return(records, nil)
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.ID == "ob1" || event.ID == "ob2"
		})).
		Return(nil).
		Twice()
	fx.outboxRepo.EXPECT().MarkDispatched(mock.Anything, "ob1", relayNow).Return(nil)
	fx.outboxRepo.EXPECT().MarkDispatched(mock.Anything, "ob2", relayNow).Return(nil)

	dispatched, err := fx.service.RelayBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, dispatched)
}

func TestOutboxService_RelayBatch_NothingDue(t *testing.T) {
	fx := createTestOutboxService(t, 1)
	fx.outboxRepo.EXPECT().Claim(mock.Anything, relayNow, time.Minute, 10).Return(nil, nil)

	dispatched, err := fx.service.RelayBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dispatched)
}

func TestOutboxService_RelayBatch_RetriesTransientPublishErrors(t *testing.T) {
	fx := createTestOutboxService(t, 3)

	var calls atomic.Int32
	fx.outboxRepo.EXPECT().Claim(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.OutboxEvent{{ID: "ob1", Type: entity.DomainEventConnectionAccepted}}, nil)
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.DomainEvent) error {
			if calls.Add(1) == 1 {
				return errors.New("broker hiccup")
			}

			return nil
		})
	fx.outboxRepo.EXPECT().MarkDispatched(mock.Anything, "ob1", relayNow).Return(nil)

	dispatched, err := fx.service.RelayBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)
	assert.Equal(t, int32(2), calls.Load())
}

func TestOutboxService_RelayBatch_ReschedulesWithBackoff(t *testing.T) {
	fx := createTestOutboxService(t, 1)

	fx.outboxRepo.EXPECT().Claim(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.OutboxEvent{{ID: "ob1", Attempts: 1}}, nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	fx.outboxRepo.EXPECT().
		Reschedule(mock.Anything, "ob1", 2, relayNow.Add(2*time.Second), "broker down").
		Return(nil)

	dispatched, err := fx.service.RelayBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dispatched)
}

func TestOutboxService_RelayBatch_MarksDeadAfterMaxAttempts(t *testing.T) {
	fx := createTestOutboxService(t, 1)

	fx.outboxRepo.EXPECT().Claim(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.OutboxEvent{{ID: "ob1", Attempts: 2}}, nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	fx.outboxRepo.EXPECT().MarkDead(mock.Anything, "ob1", 3, "broker down").Return(nil)

	dispatched, err := fx.service.RelayBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dispatched)
	fx.outboxRepo.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOutboxService_RelayBatch_ClaimFailure(t *testing.T) {
	fx := createTestOutboxService(t, 1)
	fx.outboxRepo.EXPECT().Claim(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("store down"))

	_, err := fx.service.RelayBatch(context.Background())
	assert.Error(t, err)
}

func TestOutboxService_Backoff(t *testing.T) {
	fx := createTestOutboxService(t, 1)

	assert.Equal(t, time.Second, fx.service.backoff(1))
	assert.Equal(t, 2*time.Second, fx.service.backoff(2))
	assert.Equal(t, 4*time.Second, fx.service.backoff(3))
	assert.Equal(t, 5*time.Second, fx.service.backoff(4))
	assert.Equal(t, 5*time.Second, fx.service.backoff(10))
}
