package handler

import (
	"net/http"
	"testing"
	"time"

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

const (
	organizerID = "65f1c0a0a1b2c3d4e5f60001"
	eventID     = "65f1c0a0a1b2c3d4e5f60002"
	orgID       = "65f1c0a0a1b2c3d4e5f60003"
)

func newEventTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockEventUsecase) {
	eventUC := mockUsecase.NewMockEventUsecase(t)
	h := NewEventHandler(EventHandlerParams{EventUC: eventUC, Logger: nil})

	e := newTestEcho()
	g := e.Group("/events", asUser(organizerID, entity.RoleOrganizer))
	g.GET("", h.ListEvents)
	g.POST("", h.CreateEvent)
	g.GET("/:id", h.GetEvent)
	g.PATCH("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)

	return e, eventUC
}

func TestEventHandler_ListEvents_DecodesFilter(t *testing.T) {
	e, eventUC := newEventTestServer(t)

	eventUC.EXPECT().
		ListEvents(mock.Anything, mock.MatchedBy(func(f repository.EventFilter) bool {
			return f.OrganizationID == orgID &&
				f.From != nil && f.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) &&
				f.Lat != nil && *f.Lat == 25.03 &&
				f.Lng != nil && *f.Lng == 121.56 &&
				f.RadiusKm == 5 &&
				f.Limit == 10 && f.Offset == 20
		})).
		Return([]*entity.Event{{ID: eventID, Title: "Demo"}}, nil).
		Once()

	rec := doRequest(e, http.MethodGet,
		"/events?organizationId="+orgID+"&from=2026-03-01&lat=25.03&lng=121.56&radiusKm=5&limit=10&offset=20", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	events := decodeData[[]entity.Event](t, rec)
	require.Len(t, events, 1)
	assert.Equal(t, "Demo", events[0].Title)
}

func TestEventHandler_ListEvents_MalformedQuery(t *testing.T) {
	e, _ := newEventTestServer(t)

	rec := doRequest(e, http.MethodGet, "/events?limit=many", "")

	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestEventHandler_CreateEvent(t *testing.T) {
	e, eventUC := newEventTestServer(t)

	eventUC.EXPECT().
		CreateEvent(mock.Anything, organizerID, mock.MatchedBy(func(in *usecase.CreateEventInput) bool {
			return in.Title == "Demo" && in.OrganizationID == orgID && in.Capacity == 50
		})).
		Return(&entity.Event{ID: eventID, Title: "Demo", OrganizerID: organizerID}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/events",
		`{"title":"Demo","organization_id":"`+orgID+`","capacity":50,"start_time":"2026-03-01T10:00:00Z"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	event := decodeData[entity.Event](t, rec)
	assert.Equal(t, eventID, event.ID)
	assert.NotEmpty(t, decodeEnvelope(t, rec).Meta.RequestID)
}

func TestEventHandler_CreateEvent_Errors(t *testing.T) {
	t.Run("missing title is a 400 from the use case", func(t *testing.T) {
		e, eventUC := newEventTestServer(t)
		eventUC.EXPECT().CreateEvent(mock.Anything, organizerID, mock.Anything).
			Return(nil, domainerrors.ErrEventTitleMissing).Once()

		rec := doRequest(e, http.MethodPost, "/events", `{"description":"no title"}`)

		assertErrorCode(t, rec, http.StatusBadRequest, "EVENT_TITLE_REQUIRED")
	})

	t.Run("negative capacity fails validation", func(t *testing.T) {
		e, _ := newEventTestServer(t)

		rec := doRequest(e, http.MethodPost, "/events", `{"title":"Demo","capacity":-1}`)

		body := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, body.Error.Details, "capacity")
	})

	t.Run("malformed json", func(t *testing.T) {
		e, _ := newEventTestServer(t)

		rec := doRequest(e, http.MethodPost, "/events", `{"title":`)

		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("unexpected failure is a generic 500", func(t *testing.T) {
		e, eventUC := newEventTestServer(t)
		eventUC.EXPECT().CreateEvent(mock.Anything, organizerID, mock.Anything).
			Return(nil, assert.AnError).Once()

		rec := doRequest(e, http.MethodPost, "/events", `{"title":"Demo"}`)

		body := assertErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
		assert.Nil(t, body.Error.Details)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestEventHandler_GetEvent_NotFound(t *testing.T) {
	e, eventUC := newEventTestServer(t)
	eventUC.EXPECT().GetEvent(mock.Anything, "go-meetup").Return(nil, domainerrors.ErrEventNotFound).Once()

	rec := doRequest(e, http.MethodGet, "/events/go-meetup", "")

	assertErrorCode(t, rec, http.StatusNotFound, "EVENT_NOT_FOUND")
}

func TestEventHandler_UpdateEvent_SendsOnlyPresentFields(t *testing.T) {
	e, eventUC := newEventTestServer(t)

	eventUC.EXPECT().
		UpdateEvent(mock.Anything, organizerID, eventID, mock.MatchedBy(func(p entity.EventPatch) bool {
			return p.Title != nil && *p.Title == "Renamed" &&
				p.Capacity != nil && *p.Capacity == 0 &&
				p.Description == nil && p.Location == nil
		})).
		Return(&entity.Event{ID: eventID, Title: "Renamed"}, nil).
		Once()

	rec := doRequest(e, http.MethodPatch, "/events/"+eventID, `{"title":"Renamed","capacity":0}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestEventHandler_DeleteEvent_Forbidden(t *testing.T) {
	e, eventUC := newEventTestServer(t)
	eventUC.EXPECT().DeleteEvent(mock.Anything, organizerID, eventID).
		Return(domainerrors.ErrNotEventOrganizer).Once()

	rec := doRequest(e, http.MethodDelete, "/events/"+eventID, "")

	body := assertErrorCode(t, rec, http.StatusForbidden, "NOT_EVENT_ORGANIZER")
	assert.Nil(t, body.Error.Details)
}
