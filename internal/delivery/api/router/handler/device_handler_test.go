package handler

import (
	"net/http"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockUsecase "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockDeviceUsecase) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC})

	e := newTestEcho()
	g := e.Group("/devices", asUser(attendeeID))
	g.POST("", h.RegisterDevice)
	g.GET("", h.GetUserDevices)
	g.PUT("/:id/token", h.UpdateFCMToken)
	g.DELETE("/:id", h.DeactivateDevice)

	return e, deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	e, deviceUC := newDeviceTestServer(t)

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, attendeeID, &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "pixel-8", Platform: "android"}).
		Return(&entity.UserDevice{ID: "dev-1", UserID: attendeeID, DeviceID: "pixel-8", IsActive: true}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/devices", `{"fcm_token":"fcm-1","device_id":"pixel-8","platform":"android"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, decodeData[entity.UserDevice](t, rec).IsActive)
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	e, _ := newDeviceTestServer(t)

	rec := doRequest(e, http.MethodPost, "/devices", `{"fcm_token":"fcm-1","device_id":"x","platform":"symbian"}`)

	body := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, body.Error.Details, "platform")
}

func TestDeviceHandler_UpdateFCMToken(t *testing.T) {
	e, deviceUC := newDeviceTestServer(t)
	deviceUC.EXPECT().UpdateFCMToken(mock.Anything, attendeeID, "pixel-8", "fcm-2").Return(nil).Once()

	rec := doRequest(e, http.MethodPut, "/devices/pixel-8/token", `{"fcm_token":"fcm-2"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestDeviceHandler_DeactivateDevice_NotFound(t *testing.T) {
	e, deviceUC := newDeviceTestServer(t)
	deviceUC.EXPECT().DeactivateDevice(mock.Anything, attendeeID, "gone").Return(domainerrors.ErrDeviceNotFound).Once()

	rec := doRequest(e, http.MethodDelete, "/devices/gone", "")

	assertErrorCode(t, rec, http.StatusNotFound, "DEVICE_NOT_FOUND")
}
