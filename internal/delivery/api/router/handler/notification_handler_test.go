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

func newNotificationTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})

	e := newTestEcho()
	g := e.Group("/notifications", asUser(attendeeID))
	g.GET("", h.GetNotifications)
	g.POST("/:id/read", h.MarkRead)
	g.POST("/read-all", h.MarkAllRead)

	return e, notificationUC
}

func TestNotificationHandler_GetNotifications_ScopedToCaller(t *testing.T) {
	e, notificationUC := newNotificationTestServer(t)

	notificationUC.EXPECT().
		GetNotifications(mock.Anything, mock.MatchedBy(func(f repository.NotificationFilter) bool {
			return f.RecipientID == attendeeID && f.UnreadOnly
		})).
		Return(&usecase.NotificationPage{
			Items:       []*entity.Notification{{ID: "n-1", Type: entity.NotificationTypeJoinedEvent}},
			UnreadCount: 1,
		}, nil).
		Once()

	rec := doRequest(e, http.MethodGet, "/notifications?unread=true", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	page := decodeData[usecase.NotificationPage](t, rec)
	assert.EqualValues(t, 1, page.UnreadCount)
	require.Len(t, page.Items, 1)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	t.Run("recipient", func(t *testing.T) {
		e, notificationUC := newNotificationTestServer(t)
		notificationUC.EXPECT().MarkRead(mock.Anything, attendeeID, "n-1").Return(nil).Once()

		rec := doRequest(e, http.MethodPost, "/notifications/n-1/read", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("someone else's notification", func(t *testing.T) {
		e, notificationUC := newNotificationTestServer(t)
		notificationUC.EXPECT().MarkRead(mock.Anything, attendeeID, "n-2").Return(domainerrors.ErrForbidden).Once()

		rec := doRequest(e, http.MethodPost, "/notifications/n-2/read", "")

		assertErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	e, notificationUC := newNotificationTestServer(t)
	notificationUC.EXPECT().MarkAllRead(mock.Anything, attendeeID).Return(int64(3), nil).Once()

	rec := doRequest(e, http.MethodPost, "/notifications/read-all", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, decodeData[MarkAllReadResponse](t, rec).Updated)
}
