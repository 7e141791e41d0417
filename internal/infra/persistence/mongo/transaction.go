package mongo

import (
	"context"

	"eventhub/config"
	"eventhub/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// mongoTransactionManager implements the domain's TransactionManager interface.
// Transactions need a replica set; on a standalone server the callback runs
// without one and each write commits on its own.
type mongoTransactionManager struct {
	client       *mongo.Client
	factory      *mongoRepositoryFactory
	transactions bool
}

// mongoRepositoryFactory implements the domain's RepositoryFactory interface.
// The driver binds operations to a session through the context, so the
// repositories themselves are shared.
type mongoRepositoryFactory struct {
	db *mongo.Database
}

func (f *mongoRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.db)
}

func (f *mongoRepositoryFactory) NewEventRepository() repository.EventRepository {
	return NewEventRepository(f.db)
}

func (f *mongoRepositoryFactory) NewOrganizationRepository() repository.OrganizationRepository {
	return NewOrganizationRepository(f.db)
}

func (f *mongoRepositoryFactory) NewRegistrationRepository() repository.RegistrationRepository {
	return NewRegistrationRepository(f.db)
}

func (f *mongoRepositoryFactory) NewConnectionRepository() repository.ConnectionRepository {
	return NewConnectionRepository(f.db)
}

func (f *mongoRepositoryFactory) NewOutboxRepository() repository.OutboxRepository {
	return NewOutboxRepository(f.db)
}

// NewTransactionManager is the constructor for mongoTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(client *mongo.Client, db *mongo.Database, cfg *config.Config) repository.TransactionManager {
	return &mongoTransactionManager{
		client:       client,
		factory:      &mongoRepositoryFactory{db: db},
		transactions: cfg.Mongo.Transactions,
	}
}

// Execute runs fn in a session transaction. WithTransaction retries fn on
// transient transaction errors, so fn must only touch the store through txCtx.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(txCtx context.Context, repos repository.RepositoryFactory) error) error {
	if !tm.transactions {
		return fn(ctx, tm.factory)
	}

	sess, err := tm.client.StartSession()
	if err != nil {
		return storeError(err, "failed to start session")
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	_, err = sess.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		return nil, fn(txCtx, tm.factory)
	})
	if err != nil && isUnavailable(err) {
		return storeError(err, "transaction failed")
	}

	return err
}
