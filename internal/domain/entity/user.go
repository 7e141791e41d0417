// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a person known to the platform. Credentials are owned by the
// identity provider; PasswordHash is only set for accounts created through
// the local signup endpoint and is never checked by the API. It is carried
// so those accounts can be imported into the provider.
type User struct {
	ID              string    `json:"id"`                    // Store identifier (24 hex chars).
	ExternalID      string    `json:"external_id,omitempty"` // Subject of the identity provider, used as secondary lookup key.
	Email           string    `json:"email"`                 // Login e-mail, unique.
	Name            string    `json:"name"`                  // Display name.
	PasswordHash    string    `json:"-"`                     // bcrypt hash, never serialized.
	Bio             string    `json:"bio,omitempty"`         // Free text profile field.
	AvatarURL       string    `json:"avatar_url,omitempty"`  // Profile picture location.
	OrganizationIDs []string  `json:"organization_ids"`      // Organizations the user is a member of.
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserPatch carries the mutable profile fields. Nil means unchanged.
type UserPatch struct {
	Name      *string
	Bio       *string
	AvatarURL *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Bio == nil && p.AvatarURL == nil
}
