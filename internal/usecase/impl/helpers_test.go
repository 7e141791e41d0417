package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txRepos are the repositories handed out inside a mocked transaction.
type txRepos struct {
	factory      *mockRepo.MockRepositoryFactory
	events       *mockRepo.MockEventRepository
	orgs         *mockRepo.MockOrganizationRepository
	users        *mockRepo.MockUserRepository
	registration *mockRepo.MockRegistrationRepository
	connections  *mockRepo.MockConnectionRepository
	outbox       *mockRepo.MockOutboxRepository
}

func newTxRepos(t *testing.T) *txRepos {
	return &txRepos{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		events:       mockRepo.NewMockEventRepository(t),
		orgs:         mockRepo.NewMockOrganizationRepository(t),
		users:        mockRepo.NewMockUserRepository(t),
		registration: mockRepo.NewMockRegistrationRepository(t),
		connections:  mockRepo.NewMockConnectionRepository(t),
		outbox:       mockRepo.NewMockOutboxRepository(t),
	}
}

// expectTx makes txManager run the callback once against repos, returning
// whatever the callback returns.
func expectTx(txManager *mockRepo.MockTransactionManager, repos *txRepos) {
	repos.factory.EXPECT().NewEventRepository().Return(repos.events).Maybe()
	repos.factory.EXPECT().NewOrganizationRepository().Return(repos.orgs).Maybe()
	repos.factory.EXPECT().NewUserRepository().Return(repos.users).Maybe()
	repos.factory.EXPECT().NewRegistrationRepository().Return(repos.registration).Maybe()
	repos.factory.EXPECT().NewConnectionRepository().Return(repos.connections).Maybe()
	repos.factory.EXPECT().NewOutboxRepository().Return(repos.outbox).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(txCtx context.Context, repos repository.RepositoryFactory) error) error {
			return fn(ctx, repos.factory)
		}).
		Once()
}
