package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhub/config"
	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router"
	"eventhub/internal/delivery/api/router/handler"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
	mockService "eventhub/internal/mocks/service"
	mockUsecase "eventhub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	organizerToken = "organizer-token"
	attendeeToken  = "attendee-token"
	testUserID     = "65f1c0a0a1b2c3d4e5f60001"
)

type testAPI struct {
	echo    *echo.Echo
	eventUC *mockUsecase.MockEventUsecase
	userUC  *mockUsecase.MockUserUsecase
}

func newTestAPI(t *testing.T, testRoutes bool) *testAPI {
	cfg := &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: testRoutes}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(organizerToken).
		Return(&service.Claims{UserID: testUserID, Roles: []string{"organizer"}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(attendeeToken).
		Return(&service.Claims{UserID: testUserID, Roles: []string{"attendee"}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).Return(nil, assert.AnError).Maybe()

	eventUC := mockUsecase.NewMockEventUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)

	params := router.RouterParams{
		UserHandler:         handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		EventHandler:        handler.NewEventHandler(handler.EventHandlerParams{EventUC: eventUC, Logger: logger}),
		RegistrationHandler: handler.NewRegistrationHandler(handler.RegistrationHandlerParams{RegistrationUC: mockUsecase.NewMockRegistrationUsecase(t)}),
		FeedbackHandler:     handler.NewFeedbackHandler(handler.FeedbackHandlerParams{FeedbackUC: mockUsecase.NewMockFeedbackUsecase(t)}),
		ConnectionHandler:   handler.NewConnectionHandler(handler.ConnectionHandlerParams{ConnectionUC: mockUsecase.NewMockConnectionUsecase(t)}),
		OrganizationHandler: handler.NewOrganizationHandler(handler.OrganizationHandlerParams{OrganizationUC: mockUsecase.NewMockOrganizationUsecase(t)}),
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{SubscriptionUC: mockUsecase.NewMockSubscriptionUsecase(t)}),
		BadgeHandler:        handler.NewBadgeHandler(handler.BadgeHandlerParams{BadgeUC: mockUsecase.NewMockBadgeUsecase(t)}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: mockUsecase.NewMockNotificationUsecase(t)}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		TestHandler:         handler.NewTestHandler(handler.TestHandlerParams{TokenService: tokenSvc}),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenSvc),
		Config:              cfg,
	}

	e := NewEcho(cfg, logger)
	r := router.NewRouter(params)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	return &testAPI{echo: e, eventUC: eventUC, userUC: userUC}
}

func (a *testAPI) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func TestAPI_Health(t *testing.T) {
	a := newTestAPI(t, false)

	rec := a.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAPI_RequestIDIsEchoed(t *testing.T) {
	a := newTestAPI(t, false)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-id-1")
	rec := httptest.NewRecorder()

	a.echo.ServeHTTP(rec, req)

	assert.Equal(t, "client-id-1", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"client-id-1"`)
}

func TestAPI_RequiresAuthentication(t *testing.T) {
	a := newTestAPI(t, false)

	for _, target := range []string{"/api/v1/events", "/api/v1/users/me", "/api/v1/notifications"} {
		t.Run(target, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, target, "", "").Code)
			assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, target, "forged", "").Code)
		})
	}
}

func TestAPI_SignUpIsPublic(t *testing.T) {
	a := newTestAPI(t, false)
	a.userUC.EXPECT().SignUp(mock.Anything, mock.Anything).
		Return(&entity.User{ID: testUserID, Email: "ada@example.com", Name: "Ada"}, nil).Once()

	rec := a.do(http.MethodPost, "/api/v1/users", "", `{"email":"ada@example.com","name":"Ada"}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAPI_CreateEventRequiresOrganizer(t *testing.T) {
	a := newTestAPI(t, false)

	rec := a.do(http.MethodPost, "/api/v1/events", attendeeToken, `{"title":"Demo"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	a.eventUC.EXPECT().CreateEvent(mock.Anything, testUserID, mock.Anything).
		Return(&entity.Event{ID: "65f1c0a0a1b2c3d4e5f60002", Title: "Demo"}, nil).Once()

	rec = a.do(http.MethodPost, "/api/v1/events", organizerToken, `{"title":"Demo"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAPI_ListEventsForAnyCaller(t *testing.T) {
	a := newTestAPI(t, false)
	a.eventUC.EXPECT().ListEvents(mock.Anything, mock.Anything).Return([]*entity.Event{}, nil).Once()

	rec := a.do(http.MethodGet, "/api/v1/events", attendeeToken, "")

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAPI_TestRoutes(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		a := newTestAPI(t, false)

		assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/test/public", "", "").Code)
	})

	t.Run("enabled", func(t *testing.T) {
		a := newTestAPI(t, true)

		require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/test/public", "", "").Code)
		assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/test/auth", attendeeToken, "").Code)
		assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/test/auth", "", "").Code)
	})
}

func TestAPI_BodyLimit(t *testing.T) {
	a := newTestAPI(t, false)

	rec := a.do(http.MethodPost, "/api/v1/users", "", `{"name":"`+strings.Repeat("x", 200*1024)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
