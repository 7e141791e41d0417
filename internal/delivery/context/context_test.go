package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID_GeneratesOncePerRequest(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	first := GetRequestID(c)
	second := GetRequestID(c)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestIdentity_RoundTrip(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{
		UserID: "65f1c0ffee0000000000abcd",
		Roles:  entity.Roles{entity.RoleOrganizer},
	})

	identity, ok := GetIdentity(ctx)
	assert.True(t, ok)
	assert.Equal(t, "65f1c0ffee0000000000abcd", identity.UserID)
	assert.True(t, identity.HasRole(entity.RoleOrganizer))
	assert.False(t, identity.HasRole(entity.RoleAttendee))

	_, ok = GetIdentity(context.Background())
	assert.False(t, ok)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With("request_id", "req-1")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Nil(t, GetLogger(context.Background()))

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-9")
	assert.Equal(t, "req-9", GetRequestIDFromContext(ctx))
	assert.Len(t, NewRequestID(), 36)
}
