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

// OrganizationHandlerParams holds dependencies for OrganizationHandler, injected by Fx.
type OrganizationHandlerParams struct {
	fx.In

	OrganizationUC usecase.OrganizationUsecase
}

// OrganizationHandler serves organizations.
type OrganizationHandler struct {
	organizationUC usecase.OrganizationUsecase
}

// NewOrganizationHandler is the constructor for OrganizationHandler
func NewOrganizationHandler(params OrganizationHandlerParams) *OrganizationHandler {
	return &OrganizationHandler{
		organizationUC: params.OrganizationUC,
	}
}

// UpdateOrganizationRequest carries the fields to change.
type UpdateOrganizationRequest struct {
	Name        *string                      `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string                      `json:"description" validate:"omitempty,max=2000"`
	Members     *[]entity.OrganizationMember `json:"members" validate:"omitempty,max=500"`
}

// CreateOrganization handles POST /organizations
func (h *OrganizationHandler) CreateOrganization(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var input usecase.CreateOrganizationInput
	if err := bindBody(c, &input); err != nil {
		return fail(c, err)
	}

	org, err := h.organizationUC.CreateOrganization(c.Request().Context(), userID, &input)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, org)
}

// ListOrganizations handles GET /organizations
func (h *OrganizationHandler) ListOrganizations(c echo.Context) error {
	var filter repository.OrganizationFilter
	if err := bindQuery(c, &filter); err != nil {
		return fail(c, err)
	}

	orgs, err := h.organizationUC.ListOrganizations(c.Request().Context(), filter)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, orgs)
}

// GetOrganization handles GET /organizations/:id, where id may also be a slug.
func (h *OrganizationHandler) GetOrganization(c echo.Context) error {
	org, err := h.organizationUC.GetOrganization(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, org)
}

// UpdateOrganization handles PATCH /organizations/:id
func (h *OrganizationHandler) UpdateOrganization(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req UpdateOrganizationRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, err)
	}

	patch := entity.OrganizationPatch{
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
	}
	org, err := h.organizationUC.UpdateOrganization(c.Request().Context(), userID, c.Param("id"), patch)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, org)
}
