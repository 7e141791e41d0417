package impl

import (
	"context"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	"eventhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service          usecase.SubscriptionUsecase
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	orgRepo          *mockRepo.MockOrganizationRepository
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	orgRepo := mockRepo.NewMockOrganizationRepository(t)

	service := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		OrgRepo:          orgRepo,
		Logger:           newDiscardLogger(),
	})

	return subscriptionServiceFixtures{
		service:          service,
		subscriptionRepo: subscriptionRepo,
		orgRepo:          orgRepo,
	}
}

func TestSubscriptionService_Subscribe_IsIdempotent(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	existing := &entity.Subscription{ID: "s1", UserID: "u1", OrganizationID: "o1"}
	fx.orgRepo.EXPECT().FindByID(ctx, "gophers").Return(&entity.Organization{ID: "o1"}, nil).Twice()
	fx.subscriptionRepo.EXPECT().Upsert(ctx, "u1", "o1").Return(existing, nil).Twice()

	first, err := fx.service.Subscribe(ctx, "u1", "gophers")
	require.NoError(t, err)
	second, err := fx.service.Subscribe(ctx, "u1", "gophers")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestSubscriptionService_Subscribe_UnknownOrganization(t *testing.T) {
	fx := createTestSubscriptionService(t)
	fx.orgRepo.EXPECT().FindByID(mock.Anything, "o9").Return(nil, repository.ErrOrganizationNotFound)

	_, err := fx.service.Subscribe(context.Background(), "u1", "o9")
	assert.ErrorIs(t, err, domainerrors.ErrOrganizationNotFound)
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.orgRepo.EXPECT().FindByID(ctx, "o1").Return(&entity.Organization{ID: "o1"}, nil).Twice()
	fx.subscriptionRepo.EXPECT().Delete(ctx, "u1", "o1").Return(nil).Once()
	fx.subscriptionRepo.EXPECT().Delete(ctx, "u2", "o1").Return(repository.ErrSubscriptionNotFound).Once()

	assert.NoError(t, fx.service.Unsubscribe(ctx, "u1", "o1"))
	assert.ErrorIs(t, fx.service.Unsubscribe(ctx, "u2", "o1"), domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_GetOrganizationSubscribers_MembersOnly(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	org := &entity.Organization{ID: "o1", Members: []entity.OrganizationMember{{UserID: "m1", Role: entity.MemberRoleMember}}}
	fx.orgRepo.EXPECT().FindByID(ctx, "o1").Return(org, nil).Twice()
	fx.subscriptionRepo.EXPECT().
		List(ctx, repository.SubscriptionFilter{OrganizationID: "o1"}).
		Return([]*entity.Subscription{{ID: "s1"}}, nil).
		Once()

	subscribers, err := fx.service.GetOrganizationSubscribers(ctx, "m1", "o1", repository.Page{})
	require.NoError(t, err)
	assert.Len(t, subscribers, 1)

	_, err = fx.service.GetOrganizationSubscribers(ctx, "outsider", "o1", repository.Page{})
	assert.ErrorIs(t, err, domainerrors.ErrNotOrganizationMember)
}
