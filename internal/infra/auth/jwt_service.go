// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"eventhub/config"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenType = "access"
	defaultTokenTTL = time.Hour
)

// ErrInvalidToken is returned for tokens that fail verification.
var ErrInvalidToken = errors.New("invalid token")

// jwtService verifies HS256 tokens signed with the identity provider's shared secret.
type jwtService struct {
	secret []byte        // Shared secret with the identity provider.
	issuer string        // Expected issuer, not checked when empty.
	ttl    time.Duration // Lifetime of development tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("auth.secret must be provided")
	}

	ttl := cfg.Auth.DevTokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.Auth.Secret),
		issuer: cfg.Auth.Issuer,
		ttl:    ttl,
	}, nil
}

// ValidateToken checks signature, expiry and issuer, and requires a subject.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(ErrInvalidToken, "subject missing")
	}
	if claims.Type != "" && claims.Type != accessTokenType {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", claims.Type)
	}
	claims.UserID = claims.Subject

	return claims, nil
}

// IssueAccessToken signs an access token for userID.
func (s *jwtService) IssueAccessToken(userID string, roles []string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Roles: roles,
		Type:  accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
