package handler

import (
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/api/response"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler serves event discovery and management.
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// UpdateEventRequest carries the fields to change. Absent fields stay as they are.
type UpdateEventRequest struct {
	Title                  *string          `json:"title"`
	Description            *string          `json:"description" validate:"omitempty,max=5000"`
	StartTime              *time.Time       `json:"start_time"`
	EndTime                *time.Time       `json:"end_time"`
	Location               *entity.Location `json:"location"`
	Capacity               *int             `json:"capacity" validate:"omitempty,gte=0"`
	PartnerOrganizationIDs *[]string        `json:"partner_organization_ids"`
}

func (r *UpdateEventRequest) patch() entity.EventPatch {
	return entity.EventPatch{
		Title:                  r.Title,
		Description:            r.Description,
		StartTime:              r.StartTime,
		EndTime:                r.EndTime,
		Location:               r.Location,
		Capacity:               r.Capacity,
		PartnerOrganizationIDs: r.PartnerOrganizationIDs,
	}
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(c echo.Context) error {
	var filter repository.EventFilter
	if err := bindQuery(c, &filter); err != nil {
		return fail(c, err)
	}

	events, err := h.eventUC.ListEvents(c.Request().Context(), filter)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// GetEvent handles GET /events/:id, where id may also be a slug.
func (h *EventHandler) GetEvent(c echo.Context) error {
	event, err := h.eventUC.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var input usecase.CreateEventInput
	if err := bindBody(c, &input); err != nil {
		return fail(c, err)
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), userID, &input)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, event)
}

// UpdateEvent handles PATCH /events/:id
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req UpdateEventRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, err)
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), userID, c.Param("id"), req.patch())
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// DeleteEvent handles DELETE /events/:id
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.eventUC.DeleteEvent(c.Request().Context(), userID, c.Param("id")); err != nil {
		return fail(c, err)
	}

	return response.Message(c, "Event deleted")
}
