package service

import (
	"context"
)

// PushMessage is one device notification sent to a batch of tokens.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// PushResult is the outcome of one batch. InvalidTokens lists devices the
// provider rejected for good.
type PushResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers device push notifications.
type NotificationService interface {
	// Push sends msg to at most constants.FirebaseBatchSize tokens.
	Push(ctx context.Context, msg *PushMessage) (*PushResult, error)
}
