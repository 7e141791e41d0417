package impl

import (
	"context"
	"log/slog"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

type badgeService struct {
	badgeRepo        repository.BadgeRepository
	eventRepo        repository.EventRepository
	registrationRepo repository.RegistrationRepository
	policy           string
	logger           *slog.Logger
}

// BadgeServiceParams holds dependencies for BadgeService, injected by Fx.
type BadgeServiceParams struct {
	fx.In

	BadgeRepo        repository.BadgeRepository
	EventRepo        repository.EventRepository
	RegistrationRepo repository.RegistrationRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewBadgeService creates a new badge service instance
func NewBadgeService(params BadgeServiceParams) usecase.BadgeUsecase {
	policy := constants.BadgePolicyOpen
	if params.Config != nil && params.Config.Badges != nil && params.Config.Badges.NonParticipantPolicy != "" {
		policy = params.Config.Badges.NonParticipantPolicy
	}

	return &badgeService{
		badgeRepo:        params.BadgeRepo,
		eventRepo:        params.EventRepo,
		registrationRepo: params.RegistrationRepo,
		policy:           policy,
		logger:           params.Logger,
	}
}

func (s *badgeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *badgeService) CreateBadge(ctx context.Context, creatorID string, input *usecase.CreateBadgeInput) (*entity.Badge, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown badge type")
	}
	if input.Type == entity.BadgeTypeParticipant && input.EventID == "" {
		return nil, domainerrors.ErrBadgeEventRequired
	}

	badge := &entity.Badge{
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		Type:           input.Type,
		OrganizationID: input.OrganizationID,
		CreatedBy:      creatorID,
	}

	if input.EventID != "" {
		event, err := s.eventRepo.FindByID(ctx, input.EventID)
		if err != nil {
			return nil, translateError(err, "failed to find badge event",
				mapErr(repository.ErrEventNotFound, domainerrors.ErrEventNotFound))
		}
		if event.OrganizerID != creatorID {
			return nil, domainerrors.ErrNotEventOrganizer
		}
		badge.EventID = event.ID
		if badge.OrganizationID == "" {
			badge.OrganizationID = event.OrganizationID
		}
	}

	if err := s.badgeRepo.Create(ctx, badge); err != nil {
		return nil, translateError(err, "failed to create badge")
	}

	s.log(ctx).Info("Badge created", slog.String("badge_id", badge.ID), slog.String("type", string(badge.Type)))

	return badge, nil
}

func (s *badgeService) ListBadges(ctx context.Context, filter repository.BadgeFilter) ([]*entity.Badge, error) {
	badges, err := s.badgeRepo.List(ctx, filter)
	if err != nil {
		return nil, translateError(err, "failed to list badges")
	}

	return badges, nil
}

// ClaimBadge checks the claim gate and stores the claim. The unique
// (badge, user) index rejects a second claim.
func (s *badgeService) ClaimBadge(ctx context.Context, userID, badgeID string) (*entity.BadgeClaim, error) {
	if strings.TrimSpace(badgeID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("badge_id is required")
	}

	badge, err := s.badgeRepo.FindByID(ctx, badgeID)
	if err != nil {
		return nil, translateError(err, "failed to find badge",
			mapErr(repository.ErrBadgeNotFound, domainerrors.ErrBadgeNotFound))
	}

	if err := s.checkEligibility(ctx, badge, userID); err != nil {
		return nil, err
	}

	claim := &entity.BadgeClaim{
		BadgeID: badge.ID,
		UserID:  userID,
		EventID: badge.EventID,
	}
	if err := s.badgeRepo.CreateClaim(ctx, claim); err != nil {
		return nil, translateError(err, "failed to claim badge",
			mapErr(repository.ErrDuplicateClaim, domainerrors.ErrBadgeAlreadyClaimed))
	}

	s.log(ctx).Info("Badge claimed", slog.String("badge_id", badge.ID), slog.String("user_id", userID))

	return claim, nil
}

// checkEligibility requires a checked-in registration for PARTICIPANT badges.
// Other badges follow the configured policy.
func (s *badgeService) checkEligibility(ctx context.Context, badge *entity.Badge, userID string) error {
	switch {
	case badge.Type == entity.BadgeTypeParticipant:
		registration, err := s.findRegistration(ctx, badge.EventID, userID)
		if err != nil {
			return err
		}
		if registration == nil || !registration.CheckedIn {
			return domainerrors.ErrBadgeNotEligible
		}
	case s.policy == constants.BadgePolicyRegistered && badge.EventID != "":
		registration, err := s.findRegistration(ctx, badge.EventID, userID)
		if err != nil {
			return err
		}
		if registration == nil {
			return domainerrors.ErrBadgeNotEligible.WithDetails("you must be registered for the badge's event")
		}
	}

	return nil
}

// findRegistration returns nil when the user is not registered.
func (s *badgeService) findRegistration(ctx context.Context, eventID, userID string) (*entity.Registration, error) {
	if eventID == "" {
		return nil, nil
	}

	registration, err := s.registrationRepo.FindByEventAndUser(ctx, eventID, userID)
	if errors.Is(err, repository.ErrRegistrationNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err, "failed to find registration")
	}

	return registration, nil
}

func (s *badgeService) GetUserClaims(ctx context.Context, userID string, page repository.Page) ([]*entity.BadgeClaim, error) {
	claims, err := s.badgeRepo.ListClaims(ctx, repository.BadgeClaimFilter{UserID: userID, Page: page})
	if err != nil {
		return nil, translateError(err, "failed to list badge claims")
	}

	return claims, nil
}
