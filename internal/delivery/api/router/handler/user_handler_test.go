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

func newUserTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC})

	e := newTestEcho()
	e.POST("/users", h.SignUp)
	g := e.Group("/users", asUser(attendeeID))
	g.GET("/me", h.GetMe)
	g.PATCH("/me", h.UpdateProfile)
	g.GET("/:id", h.GetUser)

	return e, userUC
}

func TestUserHandler_SignUp(t *testing.T) {
	e, userUC := newUserTestServer(t)

	userUC.EXPECT().
		SignUp(mock.Anything, &usecase.SignUpInput{Email: "ada@example.com", Name: "Ada", Password: "correct-horse"}).
		Return(&entity.User{ID: attendeeID, Email: "ada@example.com", Name: "Ada", PasswordHash: "hash"}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/users", `{"email":"ada@example.com","name":"Ada","password":"correct-horse"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.Equal(t, attendeeID, decodeData[entity.User](t, rec).ID)
}

func TestUserHandler_SignUp_Validation(t *testing.T) {
	e, _ := newUserTestServer(t)

	rec := doRequest(e, http.MethodPost, "/users", `{"email":"not-an-email","password":"short"}`)

	body := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	details, ok := body.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "password")
}

func TestUserHandler_SignUp_DuplicateEmail(t *testing.T) {
	e, userUC := newUserTestServer(t)
	userUC.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

	rec := doRequest(e, http.MethodPost, "/users", `{"email":"ada@example.com","name":"Ada"}`)

	assertErrorCode(t, rec, http.StatusConflict, "USER_ALREADY_EXISTS")
}

func TestUserHandler_GetMe(t *testing.T) {
	e, userUC := newUserTestServer(t)
	userUC.EXPECT().GetUser(mock.Anything, attendeeID).Return(&entity.User{ID: attendeeID, Name: "Ada"}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/users/me", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Ada", decodeData[entity.User](t, rec).Name)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	e, userUC := newUserTestServer(t)
	userUC.EXPECT().GetUser(mock.Anything, "missing").Return(nil, domainerrors.ErrUserNotFound).Once()

	rec := doRequest(e, http.MethodGet, "/users/missing", "")

	assertErrorCode(t, rec, http.StatusNotFound, "USER_NOT_FOUND")
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	e, userUC := newUserTestServer(t)

	userUC.EXPECT().
		UpdateProfile(mock.Anything, attendeeID, mock.MatchedBy(func(p entity.UserPatch) bool {
			return p.Bio != nil && *p.Bio == "gopher" && p.Name == nil && p.AvatarURL == nil
		})).
		Return(&entity.User{ID: attendeeID, Bio: "gopher"}, nil).
		Once()

	rec := doRequest(e, http.MethodPatch, "/users/me", `{"bio":"gopher"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "gopher", decodeData[entity.User](t, rec).Bio)
}

func TestUserHandler_UpdateProfile_InvalidAvatar(t *testing.T) {
	e, _ := newUserTestServer(t)

	rec := doRequest(e, http.MethodPatch, "/users/me", `{"avatar_url":"not a url"}`)

	body := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, body.Error.Details, "avatar_url")
}
