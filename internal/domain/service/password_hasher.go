// Package service declares the ports the use cases depend on: tokens,
// passwords, QR codes, device push and the domain event bus.
package service

// PasswordHasher protects the optional local password set at sign up.
// Sessions come from the identity provider, so the API never verifies the
// hash; it is kept for migrating accounts to the provider.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
