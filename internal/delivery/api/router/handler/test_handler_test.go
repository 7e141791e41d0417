package handler

import (
	"net/http"
	"testing"

	mockService "eventhub/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestHandler_IssueToken(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantRoles []string
	}{
		{
			name:      "defaults to attendee",
			body:      `{"user_id":"` + attendeeID + `"}`,
			wantRoles: []string{"attendee"},
		},
		{
			name:      "explicit roles",
			body:      `{"user_id":"` + attendeeID + `","roles":["attendee","organizer"]}`,
			wantRoles: []string{"attendee", "organizer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			tokenSvc.EXPECT().IssueAccessToken(attendeeID, tt.wantRoles).Return("signed.jwt.token", nil).Once()

			h := NewTestHandler(TestHandlerParams{TokenService: tokenSvc})
			e := newTestEcho()
			e.POST("/test/token", h.IssueToken)

			rec := doRequest(e, http.MethodPost, "/test/token", tt.body)

			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			data := decodeData[map[string]any](t, rec)
			assert.Equal(t, "signed.jwt.token", data["access_token"])
			assert.Equal(t, "Bearer", data["token_type"])
		})
	}
}

func TestTestHandler_IssueToken_RejectsInvalidInput(t *testing.T) {
	h := NewTestHandler(TestHandlerParams{TokenService: mockService.NewMockTokenService(t)})
	e := newTestEcho()
	e.POST("/test/token", h.IssueToken)

	rec := doRequest(e, http.MethodPost, "/test/token", `{"user_id":"alice","roles":["admin"]}`)

	body := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, body.Error.Details, "user_id")
}

func TestTestHandler_WhoAmI(t *testing.T) {
	h := NewTestHandler(TestHandlerParams{TokenService: mockService.NewMockTokenService(t)})
	e := newTestEcho()
	e.GET("/test/auth", h.WhoAmI, asUser(attendeeID))
	e.GET("/test/anonymous", h.WhoAmI)

	rec := doRequest(e, http.MethodGet, "/test/auth", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, attendeeID, decodeData[map[string]any](t, rec)["user_id"])

	rec = doRequest(e, http.MethodGet, "/test/anonymous", "")
	assertErrorCode(t, rec, http.StatusUnauthorized, "CONTEXT_ERROR")
}

func TestTestHandler_Ping(t *testing.T) {
	h := NewTestHandler(TestHandlerParams{TokenService: mockService.NewMockTokenService(t)})
	e := newTestEcho()
	e.GET("/test/public", h.Ping)

	rec := doRequest(e, http.MethodGet, "/test/public", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"pong"`)
}
