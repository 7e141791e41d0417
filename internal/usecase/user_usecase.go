// Package usecase defines the application operations the delivery layer calls.
package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
)

// SignUpInput is the data needed to create a local account.
type SignUpInput struct {
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name" validate:"required,max=100"`
	Password   string `json:"password" validate:"omitempty,min=8,max=72"`
	ExternalID string `json:"external_id" validate:"omitempty,max=128"`
	Bio        string `json:"bio" validate:"max=500"`
	AvatarURL  string `json:"avatar_url" validate:"omitempty,url"`
}

// UserUsecase defines the interface for user account use cases
type UserUsecase interface {
	// SignUp creates an account. The email must not be taken.
	SignUp(ctx context.Context, input *SignUpInput) (*entity.User, error)

	// GetUser resolves a store id or an identity provider subject.
	GetUser(ctx context.Context, id string) (*entity.User, error)

	// UpdateProfile changes the caller's own profile fields.
	UpdateProfile(ctx context.Context, userID string, patch entity.UserPatch) (*entity.User, error)
}
