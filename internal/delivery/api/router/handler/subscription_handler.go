package handler

import (
	"net/http"

	"eventhub/internal/delivery/api/response"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
}

// SubscriptionHandler serves subscriptions of users to organizations.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
	}
}

// Subscribe handles POST /organizations/:id/subscribe
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	subscription, err := h.subscriptionUC.Subscribe(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, subscription)
}

// Unsubscribe handles DELETE /organizations/:id/subscribe
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), userID, c.Param("id")); err != nil {
		return fail(c, err)
	}

	return response.Message(c, "Unsubscribed")
}

// GetOrganizationSubscribers handles GET /organizations/:id/subscribers
func (h *SubscriptionHandler) GetOrganizationSubscribers(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var page repository.Page
	if err := bindQuery(c, &page); err != nil {
		return fail(c, err)
	}

	subscribers, err := h.subscriptionUC.GetOrganizationSubscribers(c.Request().Context(), userID, c.Param("id"), page)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, subscribers)
}

// GetMySubscriptions handles GET /users/me/subscriptions
func (h *SubscriptionHandler) GetMySubscriptions(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var page repository.Page
	if err := bindQuery(c, &page); err != nil {
		return fail(c, err)
	}

	subscriptions, err := h.subscriptionUC.GetUserSubscriptions(c.Request().Context(), userID, page)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions)
}
