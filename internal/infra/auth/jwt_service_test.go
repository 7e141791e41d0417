package auth

import (
	"testing"
	"time"

	"eventhub/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_identity_provider_secret_very_long_for_testing"

func newTestConfig(secret, issuer string) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{Secret: secret, Issuer: issuer, DevTokenTTL: time.Minute}}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret, "idp"))
	require.NoError(t, err)

	token, err := jwtService.IssueAccessToken("6650f0c2a1b2c3d4e5f60718", []string{"attendee", "organizer"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "6650f0c2a1b2c3d4e5f60718", claims.UserID)
	assert.Equal(t, []string{"attendee", "organizer"}, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "idp", claims.Issuer)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret, ""))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("another_secret_of_the_same_kind_for_tests", ""))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig(testSecret, ""))
	require.NoError(t, err)

	token, err := issuer.IssueAccessToken("6650f0c2a1b2c3d4e5f60718", nil)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Rejections(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret, "idp"))
	require.NoError(t, err)

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return token
	}
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{
			name: "expired",
			token: sign(jwt.RegisteredClaims{
				Subject: "u1", Issuer: "idp", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			}, jwt.SigningMethodHS256, []byte(testSecret)),
		},
		{
			name:  "no expiry",
			token: sign(jwt.RegisteredClaims{Subject: "u1", Issuer: "idp"}, jwt.SigningMethodHS256, []byte(testSecret)),
		},
		{
			name:  "no subject",
			token: sign(jwt.RegisteredClaims{Issuer: "idp", ExpiresAt: future}, jwt.SigningMethodHS256, []byte(testSecret)),
		},
		{
			name:  "wrong issuer",
			token: sign(jwt.RegisteredClaims{Subject: "u1", Issuer: "other", ExpiresAt: future}, jwt.SigningMethodHS256, []byte(testSecret)),
		},
		{
			name:  "other algorithm",
			token: sign(jwt.RegisteredClaims{Subject: "u1", Issuer: "idp", ExpiresAt: future}, jwt.SigningMethodHS512, []byte(testSecret)),
		},
		{
			name: "refresh token",
			token: sign(jwt.MapClaims{
				"sub": "u1", "iss": "idp", "exp": future.Unix(), "type": "refresh",
			}, jwt.SigningMethodHS256, []byte(testSecret)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)

			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("", ""))

	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "auth.secret must be provided")
}
