package handler

import (
	"net/http"

	"eventhub/internal/delivery/api/response"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves the caller's in-app notifications.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
	}
}

// MarkAllReadResponse reports how many notifications changed.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// GetNotifications handles GET /notifications
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var filter repository.NotificationFilter
	if err := bindQuery(c, &filter); err != nil {
		return fail(c, err)
	}
	filter.RecipientID = userID

	page, err := h.notificationUC.GetNotifications(c.Request().Context(), filter)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, c.Param("id")); err != nil {
		return fail(c, err)
	}

	return response.Message(c, "Notification marked as read")
}

// MarkAllRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, MarkAllReadResponse{Updated: updated})
}
