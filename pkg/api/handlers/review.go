package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/pkg/api/errors"
	"github.com/jordanlanch/squadscore/pkg/metrics"
	"github.com/jordanlanch/squadscore/pkg/models"
	"github.com/jordanlanch/squadscore/pkg/review"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	service   *review.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *review.Service, m *metrics.Metrics) *ReviewHandler {
	return &ReviewHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// CreateReview godoc
// @Summary Submit a review
// @Description Create a review with ratings against a team. Unauthenticated callers are attributed to an ad-hoc anonymous user.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param X-Anonymous-Id header string false "Caller-presented anonymous key"
// @Param request body models.CreateReviewRequest true "Review data"
// @Success 201 {object} map[string]interface{} "Review created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 403 {object} models.ErrorResponse "Admins or banned users cannot review"
// @Failure 404 {object} models.ErrorResponse "Team not found"
// @Failure 409 {object} models.ErrorResponse "Duplicate review for this season"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	clientIP := c.RealIP()

	// Authenticated caller, or an ad-hoc anonymous user on first write
	userID, ok := c.Get("user_id").(int)
	if !ok {
		anon, err := h.service.EnsureAnonymousUser(c.Request().Context(), c.Request().Header.Get("X-Anonymous-Id"), clientIP)
		if err != nil {
			return errors.InternalError(c, err)
		}
		userID = anon.ID
	}

	created, err := h.service.CreateReview(c.Request().Context(), userID, req, clientIP)
	if err != nil {
		return reviewError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordReviewCreated()
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":         created.ID,
		"team_id":    created.TeamID,
		"title":      created.Title,
		"created_at": created.CreatedAt,
	})
}

// GetReview godoc
// @Summary Get a review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} map[string]interface{} "Review"
// @Failure 404 {object} models.ErrorResponse "Review not found"
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c echo.Context) error {
	var reviewID int
	if err := echo.PathParamsBinder(c).Int("id", &reviewID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
	}

	r, err := h.service.GetReview(c.Request().Context(), reviewID)
	if err != nil {
		return reviewError(c, err)
	}

	return c.JSON(http.StatusOK, reviewPayload(r))
}

// ListTeamReviews godoc
// @Summary List a team's public reviews
// @Tags Reviews
// @Produce json
// @Param teamId path int true "Team ID"
// @Param sort query string false "Sort order: recent or rating"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{} "Reviews"
// @Router /teams/{teamId}/reviews [get]
func (h *ReviewHandler) ListTeamReviews(c echo.Context) error {
	var teamID int
	if err := echo.PathParamsBinder(c).Int("teamId", &teamID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid team ID",
		})
	}

	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return errors.ValidationError(c, err)
	}

	sortBy := c.QueryParam("sort")
	if sortBy == "" {
		sortBy = review.SortRecent
	}

	rows, total, err := h.service.ListTeamReviews(c.Request().Context(), teamID, p, sortBy)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	reviews := make([]map[string]interface{}, len(rows))
	for i, r := range rows {
		reviews[i] = reviewPayload(r)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"total":   total,
	})
}

// GetTeamSummary godoc
// @Summary Get a team's aggregated rating
// @Tags Reviews
// @Produce json
// @Param teamId path int true "Team ID"
// @Success 200 {object} review.TeamSummary "Summary"
// @Router /teams/{teamId}/summary [get]
func (h *ReviewHandler) GetTeamSummary(c echo.Context) error {
	var teamID int
	if err := echo.PathParamsBinder(c).Int("teamId", &teamID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid team ID",
		})
	}

	summary, err := h.service.GetTeamSummary(c.Request().Context(), teamID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// UpdateReview godoc
// @Summary Edit a review
// @Description Authors can edit their own reviews; edits stamp edited_at
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body models.UpdateReviewRequest true "Updated fields"
// @Success 200 {object} map[string]interface{} "Review updated"
// @Failure 403 {object} models.ErrorResponse "Not the author"
// @Failure 404 {object} models.ErrorResponse "Review not found"
// @Router /reviews/{id} [patch]
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	var reviewID int
	if err := echo.PathParamsBinder(c).Int("id", &reviewID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
	}

	var req models.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	updated, err := h.service.UpdateReview(c.Request().Context(), reviewID, userID, req)
	if err != nil {
		return reviewError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":        updated.ID,
		"title":     updated.Title,
		"edited_at": updated.EditedAt,
	})
}

// reviewPayload maps a review with its loaded edges to a response body
func reviewPayload(r *ent.Review) map[string]interface{} {
	payload := map[string]interface{}{
		"id":           r.ID,
		"team_id":      r.TeamID,
		"title":        r.Title,
		"body":         r.Body,
		"season_term":  r.SeasonTerm,
		"season_year":  r.SeasonYear,
		"is_highlight": r.IsHighlight,
		"created_at":   r.CreatedAt,
		"edited_at":    r.EditedAt,
	}
	if r.AgeLevelAtReview != "" {
		payload["age_level"] = r.AgeLevelAtReview
	}
	if rating := r.Edges.Rating; rating != nil {
		payload["rating"] = map[string]interface{}{
			"coaching":     rating.Coaching,
			"development":  rating.Development,
			"transparency": rating.Transparency,
			"culture":      rating.Culture,
			"safety":       rating.Safety,
			"overall":      rating.Overall,
		}
	}
	if resp := r.Edges.OrgResponse; resp != nil {
		payload["response"] = map[string]interface{}{
			"body":       resp.Body,
			"created_at": resp.CreatedAt,
			"updated_at": resp.UpdatedAt,
		}
	}
	return payload
}

// reviewError maps review sentinels to responses
func reviewError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, review.ErrNotFound):
		return errors.DomainError(c, http.StatusNotFound, errors.CodeReviewNotFound, "Review not found")
	case goerrors.Is(err, review.ErrTeamNotFound):
		return errors.DomainError(c, http.StatusNotFound, errors.CodeTeamNotFound, "Team not found")
	case goerrors.Is(err, review.ErrDuplicate):
		return errors.ConflictError(c, "A review for this team and season already exists")
	case goerrors.Is(err, review.ErrAdminsCannot):
		return errors.DomainError(c, http.StatusForbidden, errors.CodeUserNotAuthorized, "Admin accounts cannot submit reviews")
	case goerrors.Is(err, review.ErrBannedUser):
		return errors.DomainError(c, http.StatusForbidden, errors.CodeUserNotAuthorized, "This account cannot submit content")
	case goerrors.Is(err, review.ErrNotAuthorized):
		return errors.DomainError(c, http.StatusForbidden, errors.CodeUserNotAuthorized, "Only the author can edit this review")
	case goerrors.Is(err, review.ErrUnknownReviewer):
		return errors.UnauthorizedError(c, "unknown reviewer")
	default:
		return errors.InternalError(c, err)
	}
}
