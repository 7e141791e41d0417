package context

import (
	"context"

	"eventhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Identity is the caller established by the auth middleware.
type Identity struct {
	UserID string
	Roles  entity.Roles
}

func (i Identity) HasRole(role entity.Role) bool {
	return i.Roles.Contains(role)
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity reports false for anonymous requests.
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	if !ok || identity.UserID == "" {
		return Identity{}, false
	}

	return identity, true
}

// SetIdentity records the caller on the request carried by c.
func SetIdentity(c echo.Context, identity Identity) {
	req := c.Request()
	c.SetRequest(req.WithContext(WithIdentity(req.Context(), identity)))
}
