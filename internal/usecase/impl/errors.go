// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
)

// errorMapping pairs a repository sentinel with the AppError clients see.
type errorMapping struct {
	sentinel error
	appErr   *domainerrors.BaseError
}

func mapErr(sentinel error, appErr *domainerrors.BaseError) errorMapping {
	return errorMapping{sentinel: sentinel, appErr: appErr}
}

// translateError turns repository errors into AppErrors. Invalid ids and
// filters always become 400s; store AppErrors pass through wrapped.
func translateError(err error, message string, mappings ...errorMapping) error {
	for _, m := range mappings {
		if errors.Is(err, m.sentinel) {
			return errors.Wrap(m.appErr, message)
		}
	}

	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return errors.Wrap(domainerrors.ErrInvalidID.WithDetails(err.Error()), message)
	case errors.Is(err, repository.ErrInvalidFilter):
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), message)
	}

	return errors.Wrap(err, message)
}

// newOutboxEvent starts an outbox record carrying the request id of ctx.
func newOutboxEvent(ctx context.Context, eventType entity.DomainEventType, actorID string) *entity.OutboxEvent {
	return &entity.OutboxEvent{
		Type:      eventType,
		ActorID:   actorID,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}
}
