package impl

import (
	"context"
	"testing"

	"eventhub/config"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	"eventhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type badgeServiceFixtures struct {
	service          usecase.BadgeUsecase
	badgeRepo        *mockRepo.MockBadgeRepository
	eventRepo        *mockRepo.MockEventRepository
	registrationRepo *mockRepo.MockRegistrationRepository
}

func createTestBadgeService(t *testing.T, policy string) badgeServiceFixtures {
	badgeRepo := mockRepo.NewMockBadgeRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)

	service := NewBadgeService(BadgeServiceParams{
		BadgeRepo:        badgeRepo,
		EventRepo:        eventRepo,
		RegistrationRepo: registrationRepo,
		Config:           &config.Config{Badges: &config.BadgesConfig{NonParticipantPolicy: policy}},
		Logger:           newDiscardLogger(),
	})

	return badgeServiceFixtures{
		service:          service,
		badgeRepo:        badgeRepo,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
	}
}

func TestBadgeService_ClaimBadge_Participant(t *testing.T) {
	participant := &entity.Badge{ID: "b1", Type: entity.BadgeTypeParticipant, EventID: "e1"}

	tests := []struct {
		name         string
		registration *entity.Registration
		lookupErr    error
		wantErr      error
	}{
		{
			name:         "checked in",
			registration: &entity.Registration{ID: "r1", CheckedIn: true},
		},
		{
			name:         "registered but not checked in",
			registration: &entity.Registration{ID: "r1"},
			wantErr:      domainerrors.ErrBadgeNotEligible,
		},
		{
			name:      "not registered",
			lookupErr: repository.ErrRegistrationNotFound,
			wantErr:   domainerrors.ErrBadgeNotEligible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBadgeService(t, constants.BadgePolicyOpen)
			ctx := context.Background()

			fx.badgeRepo.EXPECT().FindByID(ctx, "b1").Return(participant, nil)
			fx.registrationRepo.EXPECT().FindByEventAndUser(ctx, "e1", "u1").Return(tt.registration, tt.lookupErr)
			if tt.wantErr == nil {
				fx.badgeRepo.EXPECT().CreateClaim(ctx, mock.AnythingOfType("*entity.BadgeClaim")).Return(nil)
			}

			claim, err := fx.service.ClaimBadge(ctx, "u1", "b1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 403, domainerrors.ErrBadgeNotEligible.HTTPCode())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "b1", claim.BadgeID)
			assert.Equal(t, "e1", claim.EventID)
		})
	}
}

func TestBadgeService_ClaimBadge_Errors(t *testing.T) {
	t.Run("unknown badge", func(t *testing.T) {
		fx := createTestBadgeService(t, constants.BadgePolicyOpen)
		fx.badgeRepo.EXPECT().FindByID(mock.Anything, "b9").Return(nil, repository.ErrBadgeNotFound)

		_, err := fx.service.ClaimBadge(context.Background(), "u1", "b9")
		assert.ErrorIs(t, err, domainerrors.ErrBadgeNotFound)
	})

	t.Run("second claim", func(t *testing.T) {
		fx := createTestBadgeService(t, constants.BadgePolicyOpen)
		fx.badgeRepo.EXPECT().FindByID(mock.Anything, "b2").Return(&entity.Badge{ID: "b2", Type: entity.BadgeTypeSpeaker}, nil)
		fx.badgeRepo.EXPECT().CreateClaim(mock.Anything, mock.Anything).Return(repository.ErrDuplicateClaim)

		_, err := fx.service.ClaimBadge(context.Background(), "u1", "b2")
		assert.ErrorIs(t, err, domainerrors.ErrBadgeAlreadyClaimed)
	})
}

func TestBadgeService_ClaimBadge_NonParticipantPolicy(t *testing.T) {
	speaker := &entity.Badge{ID: "b3", Type: entity.BadgeTypeSpeaker, EventID: "e1"}

	t.Run("open policy needs no registration", func(t *testing.T) {
		fx := createTestBadgeService(t, constants.BadgePolicyOpen)
		fx.badgeRepo.EXPECT().FindByID(mock.Anything, "b3").Return(speaker, nil)
		fx.badgeRepo.EXPECT().CreateClaim(mock.Anything, mock.Anything).Return(nil)

		_, err := fx.service.ClaimBadge(context.Background(), "u1", "b3")
		assert.NoError(t, err)
	})

	t.Run("registered policy rejects strangers", func(t *testing.T) {
		fx := createTestBadgeService(t, constants.BadgePolicyRegistered)
		fx.badgeRepo.EXPECT().FindByID(mock.Anything, "b3").Return(speaker, nil)
		fx.registrationRepo.EXPECT().FindByEventAndUser(mock.Anything, "e1", "u1").Return(nil, repository.ErrRegistrationNotFound)

		_, err := fx.service.ClaimBadge(context.Background(), "u1", "b3")
		assert.ErrorIs(t, err, domainerrors.ErrBadgeNotEligible)
	})

	t.Run("registered policy accepts registrants", func(t *testing.T) {
		fx := createTestBadgeService(t, constants.BadgePolicyRegistered)
		fx.badgeRepo.EXPECT().FindByID(mock.Anything, "b3").Return(speaker, nil)
		fx.registrationRepo.EXPECT().FindByEventAndUser(mock.Anything, "e1", "u1").Return(&entity.Registration{ID: "r1"}, nil)
		fx.badgeRepo.EXPECT().CreateClaim(mock.Anything, mock.Anything).Return(nil)

		_, err := fx.service.ClaimBadge(context.Background(), "u1", "b3")
		assert.NoError(t, err)
	})
}

func TestBadgeService_CreateBadge(t *testing.T) {
	t.Run("participant badge needs an event", func(t *testing.T) {
		fx := createTestBadgeService(t, constants.BadgePolicyOpen)

		_, err := fx.service.CreateBadge(context.Background(), "u1", &usecase.CreateBadgeInput{Name: "Attendee", Type: entity.BadgeTypeParticipant})
		assert.ErrorIs(t, err, domainerrors.ErrBadgeEventRequired)
	})

	t.Run("event organizer creates badge", func(t *testing.T) {
		fx := createTestBadgeService(t, constants.BadgePolicyOpen)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, "demo").Return(&entity.Event{ID: "e1", OrganizerID: "u1", OrganizationID: "o1"}, nil)
		fx.badgeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Badge")).Return(nil)

		badge, err := fx.service.CreateBadge(ctx, "u1", &usecase.CreateBadgeInput{
			Name:    " Attendee ",
			Type:    entity.BadgeTypeParticipant,
			EventID: "demo",
		})
		require.NoError(t, err)
		assert.Equal(t, "Attendee", badge.Name)
		assert.Equal(t, "e1", badge.EventID)
		assert.Equal(t, "o1", badge.OrganizationID)
		assert.Equal(t, "u1", badge.CreatedBy)
	})

	t.Run("someone else's event", func(t *testing.T) {
		fx := createTestBadgeService(t, constants.BadgePolicyOpen)
		fx.eventRepo.EXPECT().FindByID(mock.Anything, "e1").Return(&entity.Event{ID: "e1", OrganizerID: "u2"}, nil)

		_, err := fx.service.CreateBadge(context.Background(), "u1", &usecase.CreateBadgeInput{Name: "x", Type: entity.BadgeTypeCustom, EventID: "e1"})
		assert.ErrorIs(t, err, domainerrors.ErrNotEventOrganizer)
	})
}
