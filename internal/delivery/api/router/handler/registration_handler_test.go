package handler

import (
	"net/http"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockUsecase "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const attendeeID = "65f1c0a0a1b2c3d4e5f60010"

func newRegistrationTestServer(t *testing.T, callerID string) (*echo.Echo, *mockUsecase.MockRegistrationUsecase) {
	registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(RegistrationHandlerParams{RegistrationUC: registrationUC})

	e := newTestEcho()
	g := e.Group("/events/:id", asUser(callerID))
	g.POST("/register", h.Register)
	g.GET("/registration", h.GetMyRegistration)
	g.GET("/registration/qr", h.GetCheckInQR)
	g.GET("/attendees", h.ListAttendees)
	g.POST("/attendees/:userId/checkin", h.CheckIn)
	g.POST("/checkin/qr", h.CheckInByQR)

	return e, registrationUC
}

func TestRegistrationHandler_Register(t *testing.T) {
	e, registrationUC := newRegistrationTestServer(t, attendeeID)

	registrationUC.EXPECT().
		Register(mock.Anything, attendeeID, eventID, map[string]string{"tshirt": "M"}).
		Return(&entity.Registration{ID: "reg-1", EventID: eventID, UserID: attendeeID}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/events/"+eventID+"/register", `{"responses":{"tshirt":"M"}}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeData[RegisterResponse](t, rec)
	assert.Equal(t, "reg-1", got.RegistrationID)
	require.NotNil(t, got.Registration)
	assert.Equal(t, attendeeID, got.Registration.UserID)
}

func TestRegistrationHandler_Register_Conflicts(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "already registered", err: domainerrors.ErrAlreadyRegistered, wantStatus: http.StatusConflict, wantCode: "ALREADY_REGISTERED"},
		{name: "event full", err: domainerrors.ErrEventFull, wantStatus: http.StatusConflict, wantCode: "EVENT_FULL"},
		{name: "unknown event", err: domainerrors.ErrEventNotFound, wantStatus: http.StatusNotFound, wantCode: "EVENT_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, registrationUC := newRegistrationTestServer(t, attendeeID)
			registrationUC.EXPECT().Register(mock.Anything, attendeeID, eventID, mock.Anything).Return(nil, tt.err).Once()

			rec := doRequest(e, http.MethodPost, "/events/"+eventID+"/register", `{}`)

			assertErrorCode(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestRegistrationHandler_GetMyRegistration(t *testing.T) {
	e, registrationUC := newRegistrationTestServer(t, attendeeID)

	registrationUC.EXPECT().GetStatus(mock.Anything, attendeeID, eventID).
		Return(&usecase.RegistrationStatus{
			EventID: eventID,
			UserID:  attendeeID,
			State:   entity.RegistrationStateNotRegistered,
		}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/events/"+eventID+"/registration", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	status := decodeData[usecase.RegistrationStatus](t, rec)
	assert.Equal(t, entity.RegistrationStateNotRegistered, status.State)
	assert.Nil(t, status.Registration)
}

func TestRegistrationHandler_GetCheckInQR_ServesPNG(t *testing.T) {
	e, registrationUC := newRegistrationTestServer(t, attendeeID)
	png := []byte{0x89, 'P', 'N', 'G'}

	registrationUC.EXPECT().CheckInQR(mock.Anything, attendeeID, eventID).Return(png, nil).Once()

	rec := doRequest(e, http.MethodGet, "/events/"+eventID+"/registration/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestRegistrationHandler_GetCheckInQR_NotRegistered(t *testing.T) {
	e, registrationUC := newRegistrationTestServer(t, attendeeID)
	registrationUC.EXPECT().CheckInQR(mock.Anything, attendeeID, eventID).
		Return(nil, domainerrors.ErrRegistrationNotFound).Once()

	rec := doRequest(e, http.MethodGet, "/events/"+eventID+"/registration/qr", "")

	assertErrorCode(t, rec, http.StatusNotFound, "REGISTRATION_NOT_FOUND")
}

func TestRegistrationHandler_ListAttendees(t *testing.T) {
	e, registrationUC := newRegistrationTestServer(t, organizerID)

	registrationUC.EXPECT().
		ListAttendees(mock.Anything, organizerID, eventID, mock.MatchedBy(func(f repository.RegistrationFilter) bool {
			return f.CheckedIn != nil && *f.CheckedIn && f.Limit == 5
		})).
		Return([]*entity.Registration{{ID: "reg-1", CheckedIn: true}}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/events/"+eventID+"/attendees?checkedIn=true&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	attendees := decodeData[[]entity.Registration](t, rec)
	require.Len(t, attendees, 1)
	assert.True(t, attendees[0].CheckedIn)
}

func TestRegistrationHandler_ListAttendees_NotOrganizer(t *testing.T) {
	e, registrationUC := newRegistrationTestServer(t, attendeeID)
	registrationUC.EXPECT().ListAttendees(mock.Anything, attendeeID, eventID, mock.Anything).
		Return(nil, domainerrors.ErrNotEventOrganizer).Once()

	rec := doRequest(e, http.MethodGet, "/events/"+eventID+"/attendees", "")

	assertErrorCode(t, rec, http.StatusForbidden, "NOT_EVENT_ORGANIZER")
}

func TestRegistrationHandler_CheckIn(t *testing.T) {
	e, registrationUC := newRegistrationTestServer(t, organizerID)

	registrationUC.EXPECT().CheckIn(mock.Anything, organizerID, eventID, attendeeID).
		Return(&entity.Registration{ID: "reg-1", UserID: attendeeID, CheckedIn: true}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/events/"+eventID+"/attendees/"+attendeeID+"/checkin", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decodeData[entity.Registration](t, rec).CheckedIn)
}

func TestRegistrationHandler_CheckInByQR(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		e, registrationUC := newRegistrationTestServer(t, organizerID)
		registrationUC.EXPECT().CheckInByQR(mock.Anything, organizerID, eventID, "signed-code").
			Return(&entity.Registration{ID: "reg-1", CheckedIn: true}, nil).Once()

		rec := doRequest(e, http.MethodPost, "/events/"+eventID+"/checkin/qr", `{"qr_data":"signed-code"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("tampered code", func(t *testing.T) {
		e, registrationUC := newRegistrationTestServer(t, organizerID)
		registrationUC.EXPECT().CheckInByQR(mock.Anything, organizerID, eventID, "forged").
			Return(nil, domainerrors.ErrInvalidCheckInCode).Once()

		rec := doRequest(e, http.MethodPost, "/events/"+eventID+"/checkin/qr", `{"qr_data":"forged"}`)

		assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_CHECKIN_CODE")
	})

	t.Run("missing code", func(t *testing.T) {
		e, _ := newRegistrationTestServer(t, organizerID)

		rec := doRequest(e, http.MethodPost, "/events/"+eventID+"/checkin/qr", `{}`)

		body := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, body.Error.Details, "qr_data")
	})
}
