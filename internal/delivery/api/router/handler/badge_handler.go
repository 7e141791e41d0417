package handler

import (
	"net/http"

	"eventhub/internal/delivery/api/response"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BadgeHandlerParams holds dependencies for BadgeHandler, injected by Fx.
type BadgeHandlerParams struct {
	fx.In

	BadgeUC usecase.BadgeUsecase
}

// BadgeHandler serves badges and their claims.
type BadgeHandler struct {
	badgeUC usecase.BadgeUsecase
}

// NewBadgeHandler is the constructor for BadgeHandler
func NewBadgeHandler(params BadgeHandlerParams) *BadgeHandler {
	return &BadgeHandler{
		badgeUC: params.BadgeUC,
	}
}

// ClaimBadgeRequest names the badge to claim.
type ClaimBadgeRequest struct {
	BadgeID string `json:"badge_id" validate:"required,mongodb"`
}

// CreateBadge handles POST /badges
func (h *BadgeHandler) CreateBadge(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var input usecase.CreateBadgeInput
	if err := bindBody(c, &input); err != nil {
		return fail(c, err)
	}

	badge, err := h.badgeUC.CreateBadge(c.Request().Context(), userID, &input)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, badge)
}

// ListBadges handles GET /badges
func (h *BadgeHandler) ListBadges(c echo.Context) error {
	var filter repository.BadgeFilter
	if err := bindQuery(c, &filter); err != nil {
		return fail(c, err)
	}

	badges, err := h.badgeUC.ListBadges(c.Request().Context(), filter)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, badges)
}

// ClaimBadge handles POST /badges/claim
func (h *BadgeHandler) ClaimBadge(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req ClaimBadgeRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, err)
	}

	claim, err := h.badgeUC.ClaimBadge(c.Request().Context(), userID, req.BadgeID)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, claim)
}

// GetMyBadges handles GET /users/me/badges
func (h *BadgeHandler) GetMyBadges(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var page repository.Page
	if err := bindQuery(c, &page); err != nil {
		return fail(c, err)
	}

	claims, err := h.badgeUC.GetUserClaims(c.Request().Context(), userID, page)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, claims)
}
