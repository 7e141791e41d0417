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

func TestOrganizationService_CreateOrganization(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewOrganizationService(OrganizationServiceParams{
		TxManager: txManager,
		OrgRepo:   mockRepo.NewMockOrganizationRepository(t),
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	repos := newTxRepos(t)
	expectTx(txManager, repos)
	repos.orgs.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Organization")).
		Run(func(_ context.Context, org *entity.Organization) {
			org.ID = "o1"
		}).
		Return(nil)
	repos.users.EXPECT().AddOrganization(ctx, "u1", "o1").Return(nil)

	org, err := service.CreateOrganization(ctx, "u1", &usecase.CreateOrganizationInput{Slug: "Gophers", Name: "Gophers"})
	require.NoError(t, err)
	assert.Equal(t, "gophers", org.Slug)
	assert.True(t, org.CanManage("u1"))
}

func TestOrganizationService_CreateOrganization_SlugTaken(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewOrganizationService(OrganizationServiceParams{
		TxManager: txManager,
		OrgRepo:   mockRepo.NewMockOrganizationRepository(t),
		Logger:    newDiscardLogger(),
	})

	repos := newTxRepos(t)
	expectTx(txManager, repos)
	repos.orgs.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateSlug)

	_, err := service.CreateOrganization(context.Background(), "u1", &usecase.CreateOrganizationInput{Slug: "gophers", Name: "Gophers"})
	assert.ErrorIs(t, err, domainerrors.ErrOrganizationSlugTaken)
}

func TestOrganizationService_UpdateOrganization(t *testing.T) {
	orgRepo := mockRepo.NewMockOrganizationRepository(t)
	service := NewOrganizationService(OrganizationServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		OrgRepo:   orgRepo,
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	org := &entity.Organization{
		ID:      "o1",
		OwnerID: "owner",
		Members: []entity.OrganizationMember{
			{UserID: "owner", Role: entity.MemberRoleOwner},
			{UserID: "member", Role: entity.MemberRoleMember},
		},
	}
	orgRepo.EXPECT().FindByID(ctx, "o1").Return(org, nil)

	name := "Renamed"
	_, err := service.UpdateOrganization(ctx, "member", "o1", entity.OrganizationPatch{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrNotOrganizationAdmin)

	dropOwner := []entity.OrganizationMember{{UserID: "member", Role: entity.MemberRoleAdmin}}
	_, err = service.UpdateOrganization(ctx, "owner", "o1", entity.OrganizationPatch{Members: &dropOwner})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	orgRepo.EXPECT().Update(ctx, "o1", entity.OrganizationPatch{Name: &name}).Return(&entity.Organization{ID: "o1", Name: name}, nil)
	updated, err := service.UpdateOrganization(ctx, "owner", "o1", entity.OrganizationPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
}
