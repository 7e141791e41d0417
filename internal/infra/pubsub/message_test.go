package pubsub

import (
	"testing"
	"time"

	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() *service.DomainEvent {
	return &service.DomainEvent{
		ID:             "665f1c2e8b3a4d0012345678",
		Type:           entity.DomainEventEventPublished,
		RequestID:      "req-1",
		ActorID:        "665f1c2e8b3a4d0000000001",
		EventID:        "665f1c2e8b3a4d0000000002",
		OrganizationID: "665f1c2e8b3a4d0000000003",
		OccurredAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestEncodeEvent_Attributes(t *testing.T) {
	data, attributes, err := EncodeEvent(sampleEvent())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "665f1c2e8b3a4d0012345678", attributes[constants.AttrEventID])
	assert.Equal(t, "EVENT_PUBLISHED", attributes[constants.AttrEventType])
	assert.Equal(t, "req-1", attributes[constants.AttrRequestID])
}

func TestDecodeEvent(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		data, attributes, err := EncodeEvent(sampleEvent())
		require.NoError(t, err)

		decoded, err := DecodeEvent(data, attributes)
		require.NoError(t, err)
		assert.Equal(t, sampleEvent(), decoded)
	})

	t.Run("request id from attributes", func(t *testing.T) {
		event := sampleEvent()
		event.RequestID = ""
		data, _, err := EncodeEvent(event)
		require.NoError(t, err)

		decoded, err := DecodeEvent(data, map[string]string{constants.AttrRequestID: "req-attr"})
		require.NoError(t, err)
		assert.Equal(t, "req-attr", decoded.RequestID)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := DecodeEvent([]byte("{not json"), nil)
		assert.ErrorIs(t, err, ErrMalformedMessage)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := DecodeEvent([]byte(`{"id":"x"}`), nil)
		assert.ErrorIs(t, err, ErrMalformedMessage)
	})
}

func TestNewPushMessage(t *testing.T) {
	msg, err := NewPushMessage(sampleEvent())
	require.NoError(t, err)
	assert.Equal(t, "665f1c2e8b3a4d0012345678", msg.Message.MessageID)
	assert.NotEmpty(t, msg.Message.Data)
	assert.Equal(t, "EVENT_PUBLISHED", msg.Message.Attributes[constants.AttrEventType])
}

func TestPushMessage_Event(t *testing.T) {
	msg, err := NewPushMessage(sampleEvent())
	require.NoError(t, err)

	event, err := msg.Event()
	require.NoError(t, err)
	assert.Equal(t, sampleEvent().ID, event.ID)
	assert.Equal(t, entity.DomainEventEventPublished, event.Type)

	msg.Message.Data = "%%%"
	_, err = msg.Event()
	assert.ErrorIs(t, err, ErrMalformedMessage)
}
