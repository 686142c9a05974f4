package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/squadscore/ent"
	entreview "github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/user"
	"github.com/jordanlanch/squadscore/pkg/api/errors"
	"github.com/jordanlanch/squadscore/pkg/audit"
	"github.com/jordanlanch/squadscore/pkg/models"
	"github.com/jordanlanch/squadscore/pkg/review"
)

// AdminHandler handles site administration endpoints
type AdminHandler struct {
	db        *ent.Client
	reviews   *review.Service
	audit     *audit.Service
	validator *validator.Validate
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *ent.Client, reviews *review.Service, auditService *audit.Service) *AdminHandler {
	return &AdminHandler{
		db:        db,
		reviews:   reviews,
		audit:     auditService,
		validator: validator.New(),
	}
}

// ListUsers godoc
// @Summary List user accounts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{} "Users"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return errors.ValidationError(c, err)
	}

	q := h.db.User.Query()
	if role := c.QueryParam("role"); role != "" {
		q = q.Where(user.RoleEQ(user.Role(role)))
	}

	ctx := c.Request().Context()

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	users, err := q.
		Order(ent.Desc(user.FieldCreatedAt)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		All(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	payload := make([]map[string]interface{}, len(users))
	for i, u := range users {
		entry := map[string]interface{}{
			"id":          u.ID,
			"name":        u.Name,
			"role":        u.Role,
			"is_verified": u.IsVerified,
			"is_banned":   u.IsBanned,
			"created_at":  u.CreatedAt,
		}
		if u.Email != nil {
			entry["email"] = *u.Email
		}
		payload[i] = entry
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": payload,
		"total": total,
	})
}

// BanUser godoc
// @Summary Ban a user account
// @Description Banned accounts keep their content but can no longer submit reviews or flags
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.SuccessResponse "User banned"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /admin/users/{id}/ban [post]
func (h *AdminHandler) BanUser(c echo.Context) error {
	var userID int
	if err := echo.PathParamsBinder(c).Int("id", &userID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid user ID",
		})
	}

	banned, err := h.db.User.UpdateOneID(userID).
		SetIsBanned(true).
		Save(c.Request().Context())
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "user")
		}
		return errors.DatabaseError(c, err)
	}

	if h.audit != nil {
		h.audit.LogBestEffort(c.Request().Context(), actorFromContext(c), audit.ActionUserBanned, "user", strconv.Itoa(banned.ID), nil, c.RealIP())
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "User banned",
	})
}

// ListReviews godoc
// @Summary List all reviews including hidden ones
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param team_id query int false "Filter by team"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{} "Reviews"
// @Router /admin/reviews [get]
func (h *AdminHandler) ListReviews(c echo.Context) error {
	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return errors.ValidationError(c, err)
	}

	q := h.db.Review.Query()

	var teamID int
	echo.QueryParamsBinder(c).Int("team_id", &teamID)
	if teamID > 0 {
		q = q.Where(entreview.TeamIDEQ(teamID))
	}

	ctx := c.Request().Context()

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	rows, err := q.
		WithRating().
		WithOrgResponse().
		Order(ent.Desc(entreview.FieldCreatedAt)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		All(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	reviews := make([]map[string]interface{}, len(rows))
	for i, r := range rows {
		payload := reviewPayload(r)
		payload["is_public"] = r.IsPublic
		reviews[i] = payload
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"total":   total,
	})
}

// SetReviewVisibility godoc
// @Summary Hide or restore a review
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body models.SetVisibilityRequest true "Visibility"
// @Success 200 {object} map[string]interface{} "Review updated"
// @Failure 404 {object} models.ErrorResponse "Review not found"
// @Router /admin/reviews/{id}/visibility [patch]
func (h *AdminHandler) SetReviewVisibility(c echo.Context) error {
	var reviewID int
	if err := echo.PathParamsBinder(c).Int("id", &reviewID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
	}

	var req models.SetVisibilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	updated, err := h.reviews.SetVisibility(c.Request().Context(), reviewID, *req.IsPublic, actorFromContext(c))
	if err != nil {
		return reviewError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":        updated.ID,
		"is_public": updated.IsPublic,
	})
}

// SetHighlight godoc
// @Summary Highlight a review on its team's page
// @Description Marks the review as its team's single highlight, replacing any previous one
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} map[string]interface{} "Review highlighted"
// @Failure 404 {object} models.ErrorResponse "Review not found"
// @Router /admin/reviews/{id}/highlight [post]
func (h *AdminHandler) SetHighlight(c echo.Context) error {
	var reviewID int
	if err := echo.PathParamsBinder(c).Int("id", &reviewID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
	}

	updated, err := h.reviews.SetHighlight(c.Request().Context(), reviewID)
	if err != nil {
		return reviewError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":           updated.ID,
		"is_highlight": updated.IsHighlight,
	})
}

// ListAuditLogs godoc
// @Summary Browse the audit trail
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param action query string false "Filter by action"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{} "Audit log entries"
// @Router /admin/audit-logs [get]
func (h *AdminHandler) ListAuditLogs(c echo.Context) error {
	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return errors.ValidationError(c, err)
	}

	logs, total, err := h.audit.List(c.Request().Context(), p, c.QueryParam("action"))
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	payload := make([]map[string]interface{}, len(logs))
	for i, entry := range logs {
		row := map[string]interface{}{
			"id":          entry.ID,
			"action":      entry.Action,
			"target_type": entry.TargetType,
			"target_id":   entry.TargetID,
			"metadata":    entry.Metadata,
			"ip_address":  entry.IPAddress,
			"created_at":  entry.CreatedAt,
		}
		if entry.ActorID != nil {
			row["actor_id"] = *entry.ActorID
		}
		payload[i] = row
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"audit_logs": payload,
		"total":      total,
	})
}
