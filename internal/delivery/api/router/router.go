// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"eventhub/config"
	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router/handler"
	"eventhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	EventHandler        *handler.EventHandler
	RegistrationHandler *handler.RegistrationHandler
	FeedbackHandler     *handler.FeedbackHandler
	ConnectionHandler   *handler.ConnectionHandler
	OrganizationHandler *handler.OrganizationHandler
	SubscriptionHandler *handler.SubscriptionHandler
	BadgeHandler        *handler.BadgeHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Sign up is the only public API v1 route
	public := e.Group("/api/v1")
	public.POST("/users", r.UserHandler.SignUp)

	apiV1 := e.Group("/api/v1", r.AuthMiddleware.Authenticate)
	requireOrganizer := r.AuthMiddleware.RequireRole(entity.RoleOrganizer)

	eventsGroup := apiV1.Group("/events")
	{
		eventsGroup.GET("", r.EventHandler.ListEvents)
		eventsGroup.POST("", r.EventHandler.CreateEvent, requireOrganizer)
		eventsGroup.GET("/:id", r.EventHandler.GetEvent)
		eventsGroup.PATCH("/:id", r.EventHandler.UpdateEvent)
		eventsGroup.DELETE("/:id", r.EventHandler.DeleteEvent)

		eventsGroup.POST("/:id/register", r.RegistrationHandler.Register)
		eventsGroup.GET("/:id/registration", r.RegistrationHandler.GetMyRegistration)
		eventsGroup.GET("/:id/registration/qr", r.RegistrationHandler.GetCheckInQR)
		eventsGroup.GET("/:id/attendees", r.RegistrationHandler.ListAttendees)
		eventsGroup.POST("/:id/attendees/:userId/checkin", r.RegistrationHandler.CheckIn)
		eventsGroup.POST("/:id/checkin/qr", r.RegistrationHandler.CheckInByQR)

		eventsGroup.POST("/:id/feedback", r.FeedbackHandler.SubmitFeedback)
		eventsGroup.GET("/:id/feedback", r.FeedbackHandler.ListFeedback)
	}

	connectionsGroup := apiV1.Group("/connections")
	{
		connectionsGroup.POST("", r.ConnectionHandler.RequestConnection)
		connectionsGroup.GET("", r.ConnectionHandler.ListConnections)
		connectionsGroup.PATCH("/:id", r.ConnectionHandler.UpdateConnection)
		connectionsGroup.DELETE("/:id", r.ConnectionHandler.DeleteConnection)
	}

	organizationsGroup := apiV1.Group("/organizations")
	{
		organizationsGroup.POST("", r.OrganizationHandler.CreateOrganization)
		organizationsGroup.GET("", r.OrganizationHandler.ListOrganizations)
		organizationsGroup.GET("/:id", r.OrganizationHandler.GetOrganization)
		organizationsGroup.PATCH("/:id", r.OrganizationHandler.UpdateOrganization)

		organizationsGroup.POST("/:id/subscribe", r.SubscriptionHandler.Subscribe)
		organizationsGroup.DELETE("/:id/subscribe", r.SubscriptionHandler.Unsubscribe)
		organizationsGroup.GET("/:id/subscribers", r.SubscriptionHandler.GetOrganizationSubscribers)
	}

	badgesGroup := apiV1.Group("/badges")
	{
		badgesGroup.POST("", r.BadgeHandler.CreateBadge, requireOrganizer)
		badgesGroup.GET("", r.BadgeHandler.ListBadges)
		badgesGroup.POST("/claim", r.BadgeHandler.ClaimBadge)
	}

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("/me", r.UserHandler.GetMe)
		usersGroup.PATCH("/me", r.UserHandler.UpdateProfile)
		usersGroup.GET("/me/subscriptions", r.SubscriptionHandler.GetMySubscriptions)
		usersGroup.GET("/me/badges", r.BadgeHandler.GetMyBadges)
		usersGroup.GET("/:id", r.UserHandler.GetUser)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.NotificationHandler.GetNotifications)
		notificationsGroup.POST("/read-all", r.NotificationHandler.MarkAllRead)
		notificationsGroup.POST("/:id/read", r.NotificationHandler.MarkRead)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", r.DeviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.DeviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.Config.TestRoutes == nil || !r.Config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.TestHandler.Ping)
	testGroup.POST("/token", r.TestHandler.IssueToken)
	testGroup.GET("/auth", r.TestHandler.WhoAmI, r.AuthMiddleware.Authenticate)
}
