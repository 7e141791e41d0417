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

type organizationTestServer struct {
	echo           *echo.Echo
	organizationUC *mockUsecase.MockOrganizationUsecase
	subscriptionUC *mockUsecase.MockSubscriptionUsecase
}

func newOrganizationTestServer(t *testing.T, callerID string) *organizationTestServer {
	organizationUC := mockUsecase.NewMockOrganizationUsecase(t)
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	orgs := NewOrganizationHandler(OrganizationHandlerParams{OrganizationUC: organizationUC})
	subs := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subscriptionUC})

	e := newTestEcho()
	g := e.Group("", asUser(callerID))
	g.POST("/organizations", orgs.CreateOrganization)
	g.GET("/organizations", orgs.ListOrganizations)
	g.GET("/organizations/:id", orgs.GetOrganization)
	g.PATCH("/organizations/:id", orgs.UpdateOrganization)
	g.POST("/organizations/:id/subscribe", subs.Subscribe)
	g.DELETE("/organizations/:id/subscribe", subs.Unsubscribe)
	g.GET("/organizations/:id/subscribers", subs.GetOrganizationSubscribers)
	g.GET("/users/me/subscriptions", subs.GetMySubscriptions)

	return &organizationTestServer{echo: e, organizationUC: organizationUC, subscriptionUC: subscriptionUC}
}

func TestOrganizationHandler_CreateOrganization(t *testing.T) {
	s := newOrganizationTestServer(t, organizerID)

	s.organizationUC.EXPECT().
		CreateOrganization(mock.Anything, organizerID, &usecase.CreateOrganizationInput{Slug: "gophers", Name: "Gophers"}).
		Return(&entity.Organization{ID: orgID, Slug: "gophers", Name: "Gophers", OwnerID: organizerID}, nil).
		Once()

	rec := doRequest(s.echo, http.MethodPost, "/organizations", `{"slug":"gophers","name":"Gophers"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, organizerID, decodeData[entity.Organization](t, rec).OwnerID)
}

func TestOrganizationHandler_CreateOrganization_SlugTaken(t *testing.T) {
	s := newOrganizationTestServer(t, organizerID)
	s.organizationUC.EXPECT().CreateOrganization(mock.Anything, organizerID, mock.Anything).
		Return(nil, domainerrors.ErrOrganizationSlugTaken).Once()

	rec := doRequest(s.echo, http.MethodPost, "/organizations", `{"slug":"gophers","name":"Gophers"}`)

	assertErrorCode(t, rec, http.StatusConflict, "ORGANIZATION_SLUG_TAKEN")
}

func TestOrganizationHandler_ListAndGet(t *testing.T) {
	s := newOrganizationTestServer(t, attendeeID)

	s.organizationUC.EXPECT().
		ListOrganizations(mock.Anything, repository.OrganizationFilter{MemberID: attendeeID, Page: repository.Page{Limit: 5}}).
		Return([]*entity.Organization{{ID: orgID}}, nil).
		Once()
	s.organizationUC.EXPECT().GetOrganization(mock.Anything, "gophers").
		Return(&entity.Organization{ID: orgID, Slug: "gophers"}, nil).Once()
	s.organizationUC.EXPECT().GetOrganization(mock.Anything, "missing").
		Return(nil, domainerrors.ErrOrganizationNotFound).Once()

	rec := doRequest(s.echo, http.MethodGet, "/organizations?memberId="+attendeeID+"&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(s.echo, http.MethodGet, "/organizations/gophers", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, orgID, decodeData[entity.Organization](t, rec).ID)

	rec = doRequest(s.echo, http.MethodGet, "/organizations/missing", "")
	assertErrorCode(t, rec, http.StatusNotFound, "ORGANIZATION_NOT_FOUND")
}

func TestOrganizationHandler_UpdateOrganization(t *testing.T) {
	s := newOrganizationTestServer(t, attendeeID)

	s.organizationUC.EXPECT().
		UpdateOrganization(mock.Anything, attendeeID, orgID, mock.MatchedBy(func(p entity.OrganizationPatch) bool {
			return p.Name != nil && *p.Name == "Go Club" && p.Description == nil && p.Members == nil
		})).
		Return(nil, domainerrors.ErrNotOrganizationAdmin).
		Once()

	rec := doRequest(s.echo, http.MethodPatch, "/organizations/"+orgID, `{"name":"Go Club"}`)

	assertErrorCode(t, rec, http.StatusForbidden, "NOT_ORGANIZATION_ADMIN")
}

func TestSubscriptionHandler_SubscribeIsIdempotent(t *testing.T) {
	s := newOrganizationTestServer(t, attendeeID)
	sub := &entity.Subscription{ID: "sub-1", UserID: attendeeID, OrganizationID: orgID}

	s.subscriptionUC.EXPECT().Subscribe(mock.Anything, attendeeID, orgID).Return(sub, nil).Twice()

	for range 2 {
		rec := doRequest(s.echo, http.MethodPost, "/organizations/"+orgID+"/subscribe", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "sub-1", decodeData[entity.Subscription](t, rec).ID)
	}
}

func TestSubscriptionHandler_Unsubscribe(t *testing.T) {
	s := newOrganizationTestServer(t, attendeeID)
	s.subscriptionUC.EXPECT().Unsubscribe(mock.Anything, attendeeID, orgID).
		Return(domainerrors.ErrSubscriptionNotFound).Once()

	rec := doRequest(s.echo, http.MethodDelete, "/organizations/"+orgID+"/subscribe", "")

	assertErrorCode(t, rec, http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND")
}

func TestSubscriptionHandler_Listings(t *testing.T) {
	s := newOrganizationTestServer(t, organizerID)

	s.subscriptionUC.EXPECT().GetOrganizationSubscribers(mock.Anything, organizerID, orgID, repository.Page{Limit: 2}).
		Return([]*entity.Subscription{{ID: "sub-1"}, {ID: "sub-2"}}, nil).Once()
	s.subscriptionUC.EXPECT().GetUserSubscriptions(mock.Anything, organizerID, repository.Page{}).
		Return([]*entity.Subscription{}, nil).Once()

	rec := doRequest(s.echo, http.MethodGet, "/organizations/"+orgID+"/subscribers?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decodeData[[]entity.Subscription](t, rec), 2)

	rec = doRequest(s.echo, http.MethodGet, "/users/me/subscriptions", "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
