// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already taken.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user and sets its ID.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by store id, falling back to the external id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns the users matching filter.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// Update applies patch and returns the updated user.
	Update(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error)

	// AddOrganization records that the user joined an organization.
	AddOrganization(ctx context.Context, userID, organizationID string) error
}
