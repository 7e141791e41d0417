package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/infra/pubsub"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token of a push request.
type TokenVerifier func(req *http.Request) error

// PushHandler turns Pub/Sub push deliveries into fan-out runs.
type PushHandler struct {
	verify   TokenVerifier
	logger   *slog.Logger
	fanoutUC usecase.FanoutUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	FanoutUC usecase.FanoutUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Google deliveries are
// verified outside the develop environment.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var verify TokenVerifier
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		verify = verifyPubSubToken
	}

	return &PushHandler{
		verify:   verify,
		logger:   params.Logger,
		fanoutUC: params.FanoutUC,
	}
}

// WithVerifier replaces the push token check.
func (h *PushHandler) WithVerifier(verify TokenVerifier) *PushHandler {
	h.verify = verify

	return h
}

// HandlePush answers 200 when the event was handled or can never be,
// and 503 so the transport redelivers after a transient failure.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.Error("[Worker] Failed to parse domain event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := WithEventScope(ctx, h.logger, event)

	created, err := h.fanoutUC.HandleDomainEvent(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to fan out domain event",
			slog.String("domain_event_id", event.ID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Domain event processed",
		slog.String("domain_event_id", event.ID),
		slog.String("type", string(event.Type)),
		slog.Int("notifications", created),
	)

	return c.NoContent(http.StatusOK)
}

// WithEventScope stores the event's request id and a matching logger in ctx.
// The id comes from the event, then ctx, then a fresh UUID.
func WithEventScope(ctx context.Context, logger *slog.Logger, event *service.DomainEvent) (context.Context, *slog.Logger) {
	requestID := event.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = deliverycontext.NewRequestID()
	}

	return deliverycontext.Scope(ctx, logger, requestID)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
