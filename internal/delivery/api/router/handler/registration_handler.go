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

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
}

// RegistrationHandler serves event registration and check-in.
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
	}
}

// RegisterRequest carries the answers to the event's registration form.
type RegisterRequest struct {
	Responses map[string]string `json:"responses" validate:"omitempty,max=50,dive,keys,max=100,endkeys,max=2000"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	RegistrationID string               `json:"registration_id"`
	Registration   *entity.Registration `json:"registration"`
}

// CheckInByQRRequest carries the scanned QR payload.
type CheckInByQRRequest struct {
	QRData string `json:"qr_data" validate:"required,max=1024"`
}

// Register handles POST /events/:id/register
func (h *RegistrationHandler) Register(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req RegisterRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, err)
	}

	registration, err := h.registrationUC.Register(c.Request().Context(), userID, c.Param("id"), req.Responses)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		RegistrationID: registration.ID,
		Registration:   registration,
	})
}

// GetMyRegistration handles GET /events/:id/registration
func (h *RegistrationHandler) GetMyRegistration(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	status, err := h.registrationUC.GetStatus(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// GetCheckInQR handles GET /events/:id/registration/qr
func (h *RegistrationHandler) GetCheckInQR(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	png, err := h.registrationUC.CheckInQR(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListAttendees handles GET /events/:id/attendees
func (h *RegistrationHandler) ListAttendees(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var filter repository.RegistrationFilter
	if err := bindQuery(c, &filter); err != nil {
		return fail(c, err)
	}

	attendees, err := h.registrationUC.ListAttendees(c.Request().Context(), userID, c.Param("id"), filter)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, attendees)
}

// CheckIn handles POST /events/:id/attendees/:userId/checkin
func (h *RegistrationHandler) CheckIn(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	registration, err := h.registrationUC.CheckIn(c.Request().Context(), userID, c.Param("id"), c.Param("userId"))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, registration)
}

// CheckInByQR handles POST /events/:id/checkin/qr
func (h *RegistrationHandler) CheckInByQR(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req CheckInByQRRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, err)
	}

	registration, err := h.registrationUC.CheckInByQR(c.Request().Context(), userID, c.Param("id"), req.QRData)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, registration)
}
