package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// ErrOrganizationNotFound is returned when an organization is not found.
var ErrOrganizationNotFound = errors.New("organization not found")

// OrganizationRepository defines the operations for organization persistence.
// Create returns ErrDuplicateSlug when the slug is taken.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error

	// FindByID retrieves an organization by store id, falling back to the slug.
	FindByID(ctx context.Context, id string) (*entity.Organization, error)

	List(ctx context.Context, filter OrganizationFilter) ([]*entity.Organization, error)

	Update(ctx context.Context, id string, patch entity.OrganizationPatch) (*entity.Organization, error)
}
