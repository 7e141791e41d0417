package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
)

// CreateOrganizationInput is the data needed to create an organization.
type CreateOrganizationInput struct {
	Slug        string `json:"slug" validate:"omitempty,min=3,max=64"`
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
}

// OrganizationUsecase defines the interface for organization use cases
type OrganizationUsecase interface {
	// CreateOrganization creates an organization owned by ownerID.
	CreateOrganization(ctx context.Context, ownerID string, input *CreateOrganizationInput) (*entity.Organization, error)

	// GetOrganization resolves a store id or a slug.
	GetOrganization(ctx context.Context, id string) (*entity.Organization, error)

	ListOrganizations(ctx context.Context, filter repository.OrganizationFilter) ([]*entity.Organization, error)

	// UpdateOrganization is allowed to OWNER and ADMIN members.
	UpdateOrganization(ctx context.Context, callerID, id string, patch entity.OrganizationPatch) (*entity.Organization, error)
}
