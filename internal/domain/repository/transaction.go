package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver.
type TransactionManager interface {
	// Execute runs fn within a transaction when the store supports it.
	// If fn returns an error, the transaction is aborted. Otherwise, it's committed.
	// Repository calls inside fn must use txCtx to take part in the transaction.
	Execute(ctx context.Context, fn func(txCtx context.Context, repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewEventRepository() EventRepository
	NewOrganizationRepository() OrganizationRepository
	NewRegistrationRepository() RegistrationRepository
	NewConnectionRepository() ConnectionRepository
	NewOutboxRepository() OutboxRepository
}
