package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

type organizationService struct {
	txManager repository.TransactionManager
	orgRepo   repository.OrganizationRepository
	logger    *slog.Logger
}

// OrganizationServiceParams holds dependencies for OrganizationService, injected by Fx.
type OrganizationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrgRepo   repository.OrganizationRepository
	Logger    *slog.Logger
}

// NewOrganizationService creates a new organization service instance
func NewOrganizationService(params OrganizationServiceParams) usecase.OrganizationUsecase {
	return &organizationService{
		txManager: params.TxManager,
		orgRepo:   params.OrgRepo,
		logger:    params.Logger,
	}
}

func (s *organizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateOrganization stores the organization with ownerID as its OWNER member
// and records the membership on the user.
func (s *organizationService) CreateOrganization(ctx context.Context, ownerID string, input *usecase.CreateOrganizationInput) (*entity.Organization, error) {
	org := &entity.Organization{
		Slug:        strings.ToLower(strings.TrimSpace(input.Slug)),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		OwnerID:     ownerID,
		Members:     []entity.OrganizationMember{{UserID: ownerID, Role: entity.MemberRoleOwner}},
	}

	err := s.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if err := repos.NewOrganizationRepository().Create(txCtx, org); err != nil {
			return translateError(err, "failed to create organization",
				mapErr(repository.ErrDuplicateSlug, domainerrors.ErrOrganizationSlugTaken))
		}

		if err := repos.NewUserRepository().AddOrganization(txCtx, ownerID, org.ID); err != nil {
			return translateError(err, "failed to record membership",
				mapErr(repository.ErrUserNotFound, domainerrors.ErrUserNotFound))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Organization created", slog.String("organization_id", org.ID))

	return org, nil
}

func (s *organizationService) GetOrganization(ctx context.Context, id string) (*entity.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "failed to find organization",
			mapErr(repository.ErrOrganizationNotFound, domainerrors.ErrOrganizationNotFound))
	}

	return org, nil
}

func (s *organizationService) ListOrganizations(ctx context.Context, filter repository.OrganizationFilter) ([]*entity.Organization, error) {
	orgs, err := s.orgRepo.List(ctx, filter)
	if err != nil {
		return nil, translateError(err, "failed to list organizations")
	}

	return orgs, nil
}

func (s *organizationService) UpdateOrganization(ctx context.Context, callerID, id string, patch entity.OrganizationPatch) (*entity.Organization, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no organization field to update")
	}

	org, err := s.GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}
	if !org.CanManage(callerID) {
		return nil, domainerrors.ErrNotOrganizationAdmin
	}

	if patch.Members != nil {
		if err := validateMembers(org.OwnerID, *patch.Members); err != nil {
			return nil, err
		}
	}

	updated, err := s.orgRepo.Update(ctx, org.ID, patch)
	if err != nil {
		return nil, translateError(err, "failed to update organization",
			mapErr(repository.ErrOrganizationNotFound, domainerrors.ErrOrganizationNotFound))
	}

	return updated, nil
}

// validateMembers keeps the owner as OWNER and rejects unknown roles.
func validateMembers(ownerID string, members []entity.OrganizationMember) error {
	ownerKept := false
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if !m.Role.IsValid() {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown member role %q", m.Role)
		}
		if m.UserID == "" || seen[m.UserID] {
			return errors.Wrap(domainerrors.ErrValidationFailed, "members must be unique users")
		}
		seen[m.UserID] = true
		if m.UserID == ownerID {
			ownerKept = m.Role == entity.MemberRoleOwner
		}
	}
	if !ownerKept {
		return errors.Wrap(domainerrors.ErrValidationFailed, "the owner must stay an OWNER member")
	}

	return nil
}
