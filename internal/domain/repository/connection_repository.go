package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// Domain-specific errors for connection persistence.
var (
	// ErrConnectionNotFound is returned when a connection is not found.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrDuplicateConnection is returned when the unordered user pair is already connected.
	ErrDuplicateConnection = errors.New("connection already exists")
)

// ConnectionRepository defines the operations for connection persistence.
type ConnectionRepository interface {
	// Create persists a connection. The store enforces one per unordered pair.
	Create(ctx context.Context, connection *entity.Connection) error

	FindByID(ctx context.Context, id string) (*entity.Connection, error)

	// List returns the connections the filter's user takes part in.
	List(ctx context.Context, filter ConnectionFilter) ([]*entity.Connection, error)

	// UpdateStatus sets the status and returns the connection as it was before the update.
	UpdateStatus(ctx context.Context, id string, status entity.ConnectionStatus) (*entity.Connection, error)

	Delete(ctx context.Context, id string) error

	// ListAcceptedPeerIDs returns every user with an ACCEPTED connection to userID.
	ListAcceptedPeerIDs(ctx context.Context, userID string) ([]string, error)
}
