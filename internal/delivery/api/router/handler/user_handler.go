package handler

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/api/response"
	"eventhub/internal/domain/entity"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves accounts and profiles.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest carries the profile fields to change.
type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	Bio       *string `json:"bio" validate:"omitempty,max=500"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

// SignUp handles POST /users
func (h *UserHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := bindBody(c, &input); err != nil {
		return fail(c, err)
	}

	user, err := h.userUC.SignUp(c.Request().Context(), &input)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// GetUser handles GET /users/:id, where id may also be an external id.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile handles PATCH /users/me
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req UpdateProfileRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, err)
	}

	patch := entity.UserPatch{
		Name:      req.Name,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	}
	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, patch)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
