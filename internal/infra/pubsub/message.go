// Package pubsub implements the domain event bus over the configured transport.
package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
)

// ErrMalformedMessage is returned for bus messages that do not carry a domain event.
var ErrMalformedMessage = errors.New("malformed domain event message")

// EncodeEvent serializes a domain event and builds the message attributes
// used for routing and tracing.
func EncodeEvent(event *service.DomainEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttrEventID:   event.ID,
		constants.AttrEventType: string(event.Type),
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// DecodeEvent parses a message body. A request id found only in the
// attributes is copied onto the event.
func DecodeEvent(data []byte, attributes map[string]string) (*service.DomainEvent, error) {
	var event service.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(ErrMalformedMessage, err.Error())
	}
	if event.ID == "" || event.Type == "" {
		return nil, errors.Wrap(ErrMalformedMessage, "id and type are required")
	}
	if event.RequestID == "" {
		event.RequestID = attributes[constants.AttrRequestID]
	}

	return &event, nil
}

// PushMessage is the body a push subscription POSTs to the worker.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"` // base64 encoded event
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps event the way a push subscription delivers it.
func NewPushMessage(event *service.DomainEvent) (*PushMessage, error) {
	data, attributes, err := EncodeEvent(event)
	if err != nil {
		return nil, err
	}

	msg := &PushMessage{Subscription: "projects/local/subscriptions/fanout"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = event.ID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// Event decodes the domain event carried by m.
func (m *PushMessage) Event() (*service.DomainEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedMessage, err.Error())
	}

	return DecodeEvent(data, m.Message.Attributes)
}
