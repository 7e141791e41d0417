package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
)

// ConnectionUsecase defines the interface for friendship use cases
type ConnectionUsecase interface {
	// RequestConnection creates a PENDING connection from requesterID to recipientID.
	RequestConnection(ctx context.Context, requesterID, recipientID string) (*entity.Connection, error)

	ListConnections(ctx context.Context, filter repository.ConnectionFilter) ([]*entity.Connection, error)

	// UpdateStatus is allowed to both parties. Accepting enqueues a
	// notification to the requester.
	UpdateStatus(ctx context.Context, callerID, id string, status entity.ConnectionStatus) (*entity.Connection, error)

	DeleteConnection(ctx context.Context, callerID, id string) error
}
