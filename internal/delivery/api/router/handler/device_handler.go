package handler

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/api/response"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var deviceInfo usecase.DeviceInfo
	if err := bindBody(c, &deviceInfo); err != nil {
		return fail(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &deviceInfo)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices handles retrieving all user devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req UpdateFCMTokenRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, c.Param("id"), req.FCMToken); err != nil {
		return fail(c, err)
	}

	return response.Message(c, "FCM token updated successfully")
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, c.Param("id")); err != nil {
		return fail(c, err)
	}

	return response.Message(c, "Device deactivated successfully")
}
