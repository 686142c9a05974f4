package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/pkg/api/errors"
	"github.com/jordanlanch/squadscore/pkg/models"
	"github.com/jordanlanch/squadscore/pkg/team"
)

// TeamHandler handles team endpoints
type TeamHandler struct {
	service   *team.Service
	validator *validator.Validate
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service *team.Service) *TeamHandler {
	return &TeamHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Create godoc
// @Summary Create a team
// @Description Register a single team under an organization. New teams start on the free basic plan.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateTeamRequest true "Team data"
// @Success 201 {object} map[string]interface{} "Team created"
// @Failure 404 {object} models.ErrorResponse "Organization not found"
// @Router /teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req models.CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	created, err := h.service.CreateTeam(c.Request().Context(), actorFromContext(c), req)
	if err != nil {
		return teamError(c, err)
	}

	return c.JSON(http.StatusCreated, teamPayload(created))
}

// Import godoc
// @Summary Bulk-import teams
// @Description Import a batch of teams into an organization in one transaction. Imported teams carry no placeholder subscription.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ImportTeamsRequest true "Teams to import"
// @Success 201 {object} map[string]interface{} "Teams imported"
// @Failure 404 {object} models.ErrorResponse "Organization not found"
// @Router /teams/import [post]
func (h *TeamHandler) Import(c echo.Context) error {
	var req models.ImportTeamsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	teams, err := h.service.ImportTeams(c.Request().Context(), actorFromContext(c), req)
	if err != nil {
		return teamError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"imported": len(teams),
	})
}

// Get godoc
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]interface{} "Team"
// @Failure 404 {object} models.ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (h *TeamHandler) Get(c echo.Context) error {
	var teamID int
	if err := echo.PathParamsBinder(c).Int("id", &teamID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid team ID",
		})
	}

	row, err := h.service.GetTeam(c.Request().Context(), teamID)
	if err != nil {
		return teamError(c, err)
	}

	payload := teamPayload(row)
	if org := row.Edges.Organization; org != nil {
		payload["organization"] = map[string]interface{}{
			"id":   org.ID,
			"name": org.Name,
		}
	}
	if sub := row.Edges.Subscription; sub != nil {
		payload["plan"] = sub.Plan
	}

	return c.JSON(http.StatusOK, payload)
}

// List godoc
// @Summary List teams
// @Description Browse approved teams with optional organization and name filters
// @Tags Teams
// @Produce json
// @Param organization_id query int false "Organization ID"
// @Param name query string false "Name substring"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{} "Teams"
// @Router /teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return errors.ValidationError(c, err)
	}

	var orgID int
	echo.QueryParamsBinder(c).Int("organization_id", &orgID)

	// Site admins see unapproved teams too
	role, _ := c.Get("user_role").(string)
	approvedOnly := role != "site_admin"

	teams, total, err := h.service.ListTeams(c.Request().Context(), p, orgID, c.QueryParam("name"), approvedOnly)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	payload := make([]map[string]interface{}, len(teams))
	for i, row := range teams {
		payload[i] = teamPayload(row)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"teams": payload,
		"total": total,
	})
}

// UpdateStatus godoc
// @Summary Update a team's listing status
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param request body models.UpdateTeamStatusRequest true "New status"
// @Success 200 {object} map[string]interface{} "Team updated"
// @Failure 404 {object} models.ErrorResponse "Team not found"
// @Router /admin/teams/{id}/status [patch]
func (h *TeamHandler) UpdateStatus(c echo.Context) error {
	var teamID int
	if err := echo.PathParamsBinder(c).Int("id", &teamID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid team ID",
		})
	}

	var req models.UpdateTeamStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	updated, err := h.service.UpdateTeamStatus(c.Request().Context(), teamID, req.Status)
	if err != nil {
		return teamError(c, err)
	}

	return c.JSON(http.StatusOK, teamPayload(updated))
}

func teamPayload(row *ent.Team) map[string]interface{} {
	return map[string]interface{}{
		"id":              row.ID,
		"name":            row.Name,
		"organization_id": row.OrganizationID,
		"division":        row.Division,
		"age_level":       row.AgeLevel,
		"city":            row.City,
		"state":           row.State,
		"status":          row.Status,
		"created_at":      row.CreatedAt,
	}
}

// actorFromContext returns the authenticated user ID for audit
// attribution, or nil for unauthenticated calls.
func actorFromContext(c echo.Context) *int {
	if id, ok := c.Get("user_id").(int); ok {
		return &id
	}
	return nil
}

// teamError maps team sentinels to responses
func teamError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, team.ErrNotFound):
		return errors.DomainError(c, http.StatusNotFound, errors.CodeTeamNotFound, "Team not found")
	case goerrors.Is(err, team.ErrOrganizationNotFound):
		return errors.DomainError(c, http.StatusNotFound, errors.CodeOrgNotFound, "Organization not found")
	default:
		return errors.InternalError(c, err)
	}
}
