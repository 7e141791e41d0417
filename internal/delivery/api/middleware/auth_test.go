package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
	mockService "eventhub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "65f1c0a0a1b2c3d4e5f60001"

func serve(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockService.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "token without subject",
			header: "Bearer anonymous",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("anonymous").Return(&service.Claims{}, nil).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "subject is not a user id",
			header: "Bearer opaque",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("opaque").Return(&service.Claims{UserID: "u1"}, nil).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			e.GET("/protected", func(c echo.Context) error {
				t.Fatal("handler must not run")

				return nil
			}, m.Authenticate)

			rec := serve(e, tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestAuthMiddleware_Authenticate_StoresIdentity(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good").
		Return(&service.Claims{UserID: testUserID, Roles: []string{"organizer", "bogus"}}, nil).Once()
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, testUserID, userID)

		roles, ok := GetRoles(c)
		require.True(t, ok)
		assert.True(t, roles.Contains(entity.RoleOrganizer))

		identity, ok := deliverycontext.GetIdentity(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, testUserID, identity.UserID)

		return c.NoContent(http.StatusNoContent)
	}, m.Authenticate)

	rec := serve(e, "Bearer good")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_Authenticate_CanonicalizesSubject(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("upper").
		Return(&service.Claims{UserID: strings.ToUpper(testUserID)}, nil).Once()
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, testUserID, userID)

		return c.NoContent(http.StatusNoContent)
	}, m.Authenticate)

	rec := serve(e, "Bearer upper")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	withRoles := func(roles ...entity.Role) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetIdentity(c, deliverycontext.Identity{UserID: testUserID, Roles: roles})

				return next(c)
			}
		}
	}
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	e := echo.New()
	e.GET("/organizer", ok, withRoles(entity.RoleOrganizer), m.RequireRole(entity.RoleOrganizer))
	e.GET("/attendee", ok, withRoles(entity.RoleAttendee), m.RequireRole(entity.RoleOrganizer))
	e.GET("/anonymous", ok, m.RequireRole(entity.RoleOrganizer))

	for path, want := range map[string]int{
		"/organizer": http.StatusNoContent,
		"/attendee":  http.StatusForbidden,
		"/anonymous": http.StatusForbidden,
	} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, want, rec.Code)
			if want == http.StatusForbidden {
				assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
			}
		})
	}
}
