package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

type connectionService struct {
	txManager      repository.TransactionManager
	connectionRepo repository.ConnectionRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// ConnectionServiceParams holds dependencies for ConnectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ConnectionRepo repository.ConnectionRepository
	UserRepo       repository.UserRepository
	Logger         *slog.Logger
}

// NewConnectionService creates a new connection service instance
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	return &connectionService{
		txManager:      params.TxManager,
		connectionRepo: params.ConnectionRepo,
		userRepo:       params.UserRepo,
		logger:         params.Logger,
	}
}

func (s *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RequestConnection relies on the unique unordered pair index: a request in
// either direction between the same users is rejected.
func (s *connectionService) RequestConnection(ctx context.Context, requesterID, recipientID string) (*entity.Connection, error) {
	recipientID = strings.TrimSpace(recipientID)
	if recipientID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipient_id is required")
	}
	if recipientID == requesterID {
		return nil, domainerrors.ErrSelfConnection
	}

	recipient, err := s.userRepo.FindByID(ctx, recipientID)
	if err != nil {
		return nil, translateError(err, "failed to find recipient",
			mapErr(repository.ErrUserNotFound, domainerrors.ErrUserNotFound))
	}
	if recipient.ID == requesterID {
		return nil, domainerrors.ErrSelfConnection
	}

	connection := &entity.Connection{
		RequesterID: requesterID,
		RecipientID: recipient.ID,
		Status:      entity.ConnectionStatusPending,
	}
	if err := s.connectionRepo.Create(ctx, connection); err != nil {
		return nil, translateError(err, "failed to create connection",
			mapErr(repository.ErrDuplicateConnection, domainerrors.ErrConnectionExists))
	}

	s.log(ctx).Info("Connection requested", slog.String("connection_id", connection.ID))

	return connection, nil
}

func (s *connectionService) ListConnections(ctx context.Context, filter repository.ConnectionFilter) ([]*entity.Connection, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrInvalidConnectionStatus
	}

	connections, err := s.connectionRepo.List(ctx, filter)
	if err != nil {
		return nil, translateError(err, "failed to list connections")
	}

	return connections, nil
}

// UpdateStatus writes the new status and, on a transition into ACCEPTED,
// the CONNECTION_ACCEPTED outbox record addressed to the requester.
func (s *connectionService) UpdateStatus(ctx context.Context, callerID, id string, status entity.ConnectionStatus) (*entity.Connection, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidConnectionStatus
	}

	connection, err := s.findConnection(ctx, id)
	if err != nil {
		return nil, err
	}
	if !connection.Involves(callerID) {
		return nil, domainerrors.ErrNotConnectionParty
	}

	var previous *entity.Connection
	err = s.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		var err error
		previous, err = repos.NewConnectionRepository().UpdateStatus(txCtx, connection.ID, status)
		if err != nil {
			return translateError(err, "failed to update connection status",
				mapErr(repository.ErrConnectionNotFound, domainerrors.ErrConnectionNotFound))
		}

		if status != entity.ConnectionStatusAccepted || previous.Status == entity.ConnectionStatusAccepted {
			return nil
		}

		record := newOutboxEvent(ctx, entity.DomainEventConnectionAccepted, callerID)
		record.ConnectionID = previous.ID
		record.RecipientID = previous.RequesterID
		if err := repos.NewOutboxRepository().Enqueue(txCtx, record); err != nil {
			return translateError(err, "failed to enqueue connection accepted")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	updated := *previous
	updated.Status = status
	updated.UpdatedAt = time.Now().UTC()

	s.log(ctx).Info("Connection status updated",
		slog.String("connection_id", updated.ID),
		slog.String("from", string(previous.Status)),
		slog.String("to", string(status)),
	)

	return &updated, nil
}

func (s *connectionService) DeleteConnection(ctx context.Context, callerID, id string) error {
	connection, err := s.findConnection(ctx, id)
	if err != nil {
		return err
	}
	if !connection.Involves(callerID) {
		return domainerrors.ErrNotConnectionParty
	}

	if err := s.connectionRepo.Delete(ctx, connection.ID); err != nil {
		return translateError(err, "failed to delete connection",
			mapErr(repository.ErrConnectionNotFound, domainerrors.ErrConnectionNotFound))
	}

	return nil
}

func (s *connectionService) findConnection(ctx context.Context, id string) (*entity.Connection, error) {
	connection, err := s.connectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "failed to find connection",
			mapErr(repository.ErrConnectionNotFound, domainerrors.ErrConnectionNotFound))
	}

	return connection, nil
}
