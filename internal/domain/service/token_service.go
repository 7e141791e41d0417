package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity provider claims the API relies on. UserID mirrors
// the registered subject.
type Claims struct {
	UserID string   `json:"-"`
	Roles  []string `json:"roles,omitempty"`
	Type   string   `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued by the identity provider.
type TokenService interface {
	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// IssueAccessToken signs a token the same way the identity provider does.
	// It only backs the development token endpoint.
	IssueAccessToken(userID string, roles []string) (string, error)
}
