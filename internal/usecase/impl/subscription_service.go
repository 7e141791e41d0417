package impl

import (
	"context"
	"log/slog"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	orgRepo          repository.OrganizationRepository
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	OrgRepo          repository.OrganizationRepository
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		orgRepo:          params.OrgRepo,
		logger:           params.Logger,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Subscribe upserts on (user, organization); repeating it returns the same subscription.
func (s *subscriptionService) Subscribe(ctx context.Context, userID, organizationID string) (*entity.Subscription, error) {
	org, err := s.findOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	subscription, err := s.subscriptionRepo.Upsert(ctx, userID, org.ID)
	if err != nil {
		return nil, translateError(err, "failed to subscribe")
	}

	s.log(ctx).Debug("Subscribed to organization",
		slog.String("organization_id", org.ID),
		slog.String("user_id", userID),
	)

	return subscription, nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, userID, organizationID string) error {
	org, err := s.findOrganization(ctx, organizationID)
	if err != nil {
		return err
	}

	if err := s.subscriptionRepo.Delete(ctx, userID, org.ID); err != nil {
		return translateError(err, "failed to unsubscribe",
			mapErr(repository.ErrSubscriptionNotFound, domainerrors.ErrSubscriptionNotFound))
	}

	return nil
}

func (s *subscriptionService) GetUserSubscriptions(ctx context.Context, userID string, page repository.Page) ([]*entity.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.List(ctx, repository.SubscriptionFilter{UserID: userID, Page: page})
	if err != nil {
		return nil, translateError(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}

func (s *subscriptionService) GetOrganizationSubscribers(ctx context.Context, callerID, organizationID string, page repository.Page) ([]*entity.Subscription, error) {
	org, err := s.findOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if !org.IsMember(callerID) {
		return nil, domainerrors.ErrNotOrganizationMember
	}

	subscriptions, err := s.subscriptionRepo.List(ctx, repository.SubscriptionFilter{OrganizationID: org.ID, Page: page})
	if err != nil {
		return nil, translateError(err, "failed to list subscribers")
	}

	return subscriptions, nil
}

func (s *subscriptionService) findOrganization(ctx context.Context, organizationID string) (*entity.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, organizationID)
	if err != nil {
		return nil, translateError(err, "failed to find organization",
			mapErr(repository.ErrOrganizationNotFound, domainerrors.ErrOrganizationNotFound))
	}

	return org, nil
}
