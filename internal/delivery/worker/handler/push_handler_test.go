package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
	"eventhub/internal/infra/pubsub"
	mockUsecase "eventhub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushTestHandler(t *testing.T) (*PushHandler, *mockUsecase.MockFanoutUsecase) {
	fanoutUC := mockUsecase.NewMockFanoutUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:   &config.Config{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		FanoutUC: fanoutUC,
	})

	return h, fanoutUC
}

func pushBody(t *testing.T, event *service.DomainEvent) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func testDomainEvent() *service.DomainEvent {
	return &service.DomainEvent{
		ID:         "outbox-1",
		Type:       entity.DomainEventRegistrationCreated,
		RequestID:  "req-42",
		ActorID:    "65f1c0a0a1b2c3d4e5f60010",
		EventID:    "65f1c0a0a1b2c3d4e5f60002",
		OccurredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	h, fanoutUC := newPushTestHandler(t)

	fanoutUC.EXPECT().
		HandleDomainEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
		}), mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.ID == "outbox-1" && event.Type == entity.DomainEventRegistrationCreated
		})).
		Return(1, nil).
		Once()

	rec := push(h, pushBody(t, testDomainEvent()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_FanoutFailureIsRetried(t *testing.T) {
	h, fanoutUC := newPushTestHandler(t)
	fanoutUC.EXPECT().HandleDomainEvent(mock.Anything, mock.Anything).Return(0, assert.AnError).Once()

	rec := push(h, pushBody(t, testDomainEvent()))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "data is not base64", body: `{"message":{"data":"%%%","messageId":"1"}}`},
		{name: "data is not an event", body: `{"message":{"data":"bm90IGpzb24=","messageId":"1"}}`},
		{name: "event without type", body: `{"message":{"data":"eyJpZCI6IjEifQ==","messageId":"1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newPushTestHandler(t)

			rec := push(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_RejectsUnverifiedRequest(t *testing.T) {
	h, _ := newPushTestHandler(t)
	h.WithVerifier(func(*http.Request) error { return assert.AnError })

	rec := push(h, pushBody(t, testDomainEvent()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithEventScope(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("event request id wins", func(t *testing.T) {
		ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")

		ctx, _ = WithEventScope(ctx, logger, &service.DomainEvent{RequestID: "from-event"})

		assert.Equal(t, "from-event", deliverycontext.GetRequestIDFromContext(ctx))
		assert.NotNil(t, deliverycontext.GetLogger(ctx))
	})

	t.Run("falls back to a fresh id", func(t *testing.T) {
		ctx, _ := WithEventScope(context.Background(), logger, &service.DomainEvent{})

		assert.Len(t, deliverycontext.GetRequestIDFromContext(ctx), 36)
	})
}
