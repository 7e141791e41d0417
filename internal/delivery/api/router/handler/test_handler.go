package handler

import (
	"net/http"

	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/response"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type TestHandlerParams struct {
	fx.In

	TokenService service.TokenService
}

// TestHandler serves the /test routes used to exercise authentication
// locally. The router mounts them only when testRoutes.enabled is set.
type TestHandler struct {
	tokenSvc service.TokenService
}

func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{tokenSvc: params.TokenService}
}

// IssueTokenRequest names the user a development token is issued for.
type IssueTokenRequest struct {
	UserID string   `json:"user_id" validate:"required,mongodb"`
	Roles  []string `json:"roles" validate:"omitempty,dive,oneof=attendee organizer"`
}

// WhoAmI echoes the identity the auth middleware established.
func (h *TestHandler) WhoAmI(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "No authenticated caller on this request")
	}
	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"roles":   roles,
	})
}

// Ping answers without authentication.
func (h *TestHandler) Ping(c echo.Context) error {
	return response.Message(c, "pong")
}

// IssueToken signs a token for any user so local clients can call the API
// without the identity provider. Callers without roles become attendees.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, err)
	}
	if len(req.Roles) == 0 {
		req.Roles = []string{entity.RoleAttendee.String()}
	}

	token, err := h.tokenSvc.IssueAccessToken(req.UserID, req.Roles)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"roles":        req.Roles,
	})
}
