package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
)

// CreateBadgeInput is the data needed to create a badge.
type CreateBadgeInput struct {
	Name           string           `json:"name" validate:"required,max=100"`
	Description    string           `json:"description" validate:"max=1000"`
	Type           entity.BadgeType `json:"type" validate:"required,oneof=PARTICIPANT SPEAKER SPONSOR CUSTOM"`
	EventID        string           `json:"event_id"`
	OrganizationID string           `json:"organization_id"`
}

// BadgeUsecase defines the interface for badges and claims
type BadgeUsecase interface {
	CreateBadge(ctx context.Context, creatorID string, input *CreateBadgeInput) (*entity.Badge, error)

	ListBadges(ctx context.Context, filter repository.BadgeFilter) ([]*entity.Badge, error)

	// ClaimBadge awards a badge to userID when the claim gate allows it.
	ClaimBadge(ctx context.Context, userID, badgeID string) (*entity.BadgeClaim, error)

	GetUserClaims(ctx context.Context, userID string, page repository.Page) ([]*entity.BadgeClaim, error)
}
