package middleware

import (
	"strings"

	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and records the caller and a
// user tagged logger on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.UserID == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		userID, ok := canonicalUserID(claims.UserID)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token subject is not a user id")
		}

		identity := deliverycontext.Identity{
			UserID: userID,
			Roles:  entity.RolesFromStrings(claims.Roles),
		}
		deliverycontext.SetIdentity(c, identity)
		if logger := deliverycontext.GetLogger(c.Request().Context()); logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With("user_id", identity.UserID))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// canonicalUserID returns the lower-case hex form of subject, so ids
// compare equal however the issuer spelled them.
func canonicalUserID(subject string) (string, bool) {
	oid, err := bson.ObjectIDFromHex(subject)
	if err != nil {
		return "", false
	}

	return oid.Hex(), true
}

// RequireRole checks that the caller holds role. It must be used after
// Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: role information missing")
			}

			if !roles.Contains(role) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: require '"+string(role)+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (string, bool) {
	identity, ok := deliverycontext.GetIdentity(c.Request().Context())

	return identity.UserID, ok
}

// GetRoles returns the roles of the authenticated user.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	identity, ok := deliverycontext.GetIdentity(c.Request().Context())

	return identity.Roles, ok
}
