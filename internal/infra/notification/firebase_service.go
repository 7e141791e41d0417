// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"

	"eventhub/config"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates the push service. Push is optional: without a
// firebase section it returns nil and notifications stay in-app only.
func NewFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return nil, nil
	}

	var appCfg *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// Push sends one multicast message. Tokens the provider reports as invalid
// or unregistered are returned so the caller can deactivate them.
func (s *firebaseService) Push(ctx context.Context, msg *service.PushMessage) (*service.PushResult, error) {
	if len(msg.Tokens) == 0 {
		return &service.PushResult{}, nil
	}
	if len(msg.Tokens) > constants.FirebaseBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(msg.Tokens), constants.FirebaseBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.PushResult{
		Sent:   response.SuccessCount,
		Failed: response.FailureCount,
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, msg.Tokens[idx])
		}
	}

	return result, nil
}
