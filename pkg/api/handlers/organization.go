package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/pkg/api/errors"
	"github.com/jordanlanch/squadscore/pkg/models"
	"github.com/jordanlanch/squadscore/pkg/organization"
)

// OrganizationHandler handles organization endpoints
type OrganizationHandler struct {
	service   *organization.Service
	validator *validator.Validate
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service *organization.Service) *OrganizationHandler {
	return &OrganizationHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Create godoc
// @Summary Create an organization
// @Description Register an organization. New organizations start on the free basic plan.
// @Tags Organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} map[string]interface{} "Organization created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /organizations [post]
func (h *OrganizationHandler) Create(c echo.Context) error {
	var req models.CreateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	org, err := h.service.CreateOrganization(c.Request().Context(), req)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusCreated, organizationPayload(org))
}

// Get godoc
// @Summary Get an organization
// @Tags Organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} map[string]interface{} "Organization"
// @Failure 404 {object} models.ErrorResponse "Organization not found"
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) Get(c echo.Context) error {
	var orgID int
	if err := echo.PathParamsBinder(c).Int("id", &orgID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid organization ID",
		})
	}

	org, err := h.service.GetOrganization(c.Request().Context(), orgID)
	if err != nil {
		if goerrors.Is(err, organization.ErrNotFound) {
			return errors.DomainError(c, http.StatusNotFound, errors.CodeOrgNotFound, "Organization not found")
		}
		return errors.InternalError(c, err)
	}

	payload := organizationPayload(org)
	if teams := org.Edges.Teams; teams != nil {
		list := make([]map[string]interface{}, len(teams))
		for i, t := range teams {
			list[i] = map[string]interface{}{
				"id":   t.ID,
				"name": t.Name,
			}
		}
		payload["teams"] = list
	}
	if sub := org.Edges.Subscription; sub != nil {
		payload["plan"] = sub.Plan
	}

	return c.JSON(http.StatusOK, payload)
}

// List godoc
// @Summary List organizations
// @Description Browse approved organizations with optional name and state filters
// @Tags Organizations
// @Produce json
// @Param name query string false "Name substring"
// @Param state query string false "State"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{} "Organizations"
// @Router /organizations [get]
func (h *OrganizationHandler) List(c echo.Context) error {
	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return errors.ValidationError(c, err)
	}

	orgs, total, err := h.service.ListOrganizations(c.Request().Context(), p, c.QueryParam("name"), c.QueryParam("state"))
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	payload := make([]map[string]interface{}, len(orgs))
	for i, org := range orgs {
		payload[i] = organizationPayload(org)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"organizations": payload,
		"total":         total,
	})
}

// Update godoc
// @Summary Update an organization
// @Tags Organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Organization ID"
// @Param request body organization.UpdateOrganizationRequest true "Updated fields"
// @Success 200 {object} map[string]interface{} "Organization updated"
// @Failure 404 {object} models.ErrorResponse "Organization not found"
// @Router /organizations/{id} [patch]
func (h *OrganizationHandler) Update(c echo.Context) error {
	var orgID int
	if err := echo.PathParamsBinder(c).Int("id", &orgID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid organization ID",
		})
	}

	var req organization.UpdateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	org, err := h.service.UpdateOrganization(c.Request().Context(), orgID, req)
	if err != nil {
		if goerrors.Is(err, organization.ErrNotFound) {
			return errors.DomainError(c, http.StatusNotFound, errors.CodeOrgNotFound, "Organization not found")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, organizationPayload(org))
}

func organizationPayload(org *ent.Organization) map[string]interface{} {
	return map[string]interface{}{
		"id":          org.ID,
		"name":        org.Name,
		"description": org.Description,
		"website":     org.Website,
		"city":        org.City,
		"state":       org.State,
		"status":      org.Status,
		"created_at":  org.CreatedAt,
	}
}
