package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// Domain-specific errors for badge persistence.
var (
	// ErrBadgeNotFound is returned when a badge is not found.
	ErrBadgeNotFound = errors.New("badge not found")
	// ErrDuplicateClaim is returned when the user already claimed the badge.
	ErrDuplicateClaim = errors.New("badge already claimed")
)

// BadgeRepository defines the operations for badges and their claims.
type BadgeRepository interface {
	Create(ctx context.Context, badge *entity.Badge) error

	FindByID(ctx context.Context, id string) (*entity.Badge, error)

	List(ctx context.Context, filter BadgeFilter) ([]*entity.Badge, error)

	// CreateClaim persists a claim. The store enforces one per (badge, user).
	CreateClaim(ctx context.Context, claim *entity.BadgeClaim) error

	ListClaims(ctx context.Context, filter BadgeClaimFilter) ([]*entity.BadgeClaim, error)
}
