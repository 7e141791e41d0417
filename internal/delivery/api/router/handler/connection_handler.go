package handler

import (
	"net/http"

	"eventhub/internal/delivery/api/response"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConnectionHandlerParams holds dependencies for ConnectionHandler, injected by Fx.
type ConnectionHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
}

// ConnectionHandler serves friend connections between users.
type ConnectionHandler struct {
	connectionUC usecase.ConnectionUsecase
}

// NewConnectionHandler is the constructor for ConnectionHandler
func NewConnectionHandler(params ConnectionHandlerParams) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUC: params.ConnectionUC,
	}
}

// CreateConnectionRequest names the user to connect with.
type CreateConnectionRequest struct {
	RecipientID string `json:"recipient_id"`
}

// UpdateConnectionRequest carries the new connection status.
type UpdateConnectionRequest struct {
	Status entity.ConnectionStatus `json:"status" validate:"required"`
}

// RequestConnection handles POST /connections
func (h *ConnectionHandler) RequestConnection(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req CreateConnectionRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, err)
	}

	connection, err := h.connectionUC.RequestConnection(c.Request().Context(), userID, req.RecipientID)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, connection)
}

// ListConnections handles GET /connections
func (h *ConnectionHandler) ListConnections(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var filter repository.ConnectionFilter
	if err := bindQuery(c, &filter); err != nil {
		return fail(c, err)
	}
	filter.UserID = userID

	connections, err := h.connectionUC.ListConnections(c.Request().Context(), filter)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, connections)
}

// UpdateConnection handles PATCH /connections/:id
func (h *ConnectionHandler) UpdateConnection(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req UpdateConnectionRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, err)
	}

	connection, err := h.connectionUC.UpdateStatus(c.Request().Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, connection)
}

// DeleteConnection handles DELETE /connections/:id
func (h *ConnectionHandler) DeleteConnection(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.connectionUC.DeleteConnection(c.Request().Context(), userID, c.Param("id")); err != nil {
		return fail(c, err)
	}

	return response.Message(c, "Connection deleted")
}
