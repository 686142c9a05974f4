package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/pkg/api/errors"
	"github.com/jordanlanch/squadscore/pkg/flag"
	"github.com/jordanlanch/squadscore/pkg/metrics"
	"github.com/jordanlanch/squadscore/pkg/models"
	"github.com/jordanlanch/squadscore/pkg/review"
)

// FlagHandler handles moderation flag endpoints
type FlagHandler struct {
	service   *flag.Service
	reviews   *review.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewFlagHandler creates a new flag handler. The review service is used
// to attribute anonymous reporters.
func NewFlagHandler(service *flag.Service, reviews *review.Service, m *metrics.Metrics) *FlagHandler {
	return &FlagHandler{
		service:   service,
		reviews:   reviews,
		metrics:   m,
		validator: validator.New(),
	}
}

// FlagReview godoc
// @Summary Flag a review for moderation
// @Description Raise a flag against a review. Unauthenticated callers are attributed to an ad-hoc anonymous user.
// @Tags Flags
// @Accept json
// @Produce json
// @Param reviewId path int true "Review ID"
// @Param X-Anonymous-Id header string false "Caller-presented anonymous key"
// @Param request body models.FlagRequest true "Flag reason"
// @Success 201 {object} map[string]interface{} "Flag created"
// @Failure 403 {object} models.ErrorResponse "Banned users cannot flag"
// @Failure 404 {object} models.ErrorResponse "Review not found"
// @Router /reviews/{reviewId}/flags [post]
func (h *FlagHandler) FlagReview(c echo.Context) error {
	var reviewID int
	if err := echo.PathParamsBinder(c).Int("reviewId", &reviewID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
	}

	var req models.FlagRequest
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

	reporterID, ok := c.Get("user_id").(int)
	if !ok {
		anon, err := h.reviews.EnsureAnonymousUser(c.Request().Context(), c.Request().Header.Get("X-Anonymous-Id"), clientIP)
		if err != nil {
			return errors.InternalError(c, err)
		}
		reporterID = anon.ID
	}

	f, err := h.service.FlagReview(c.Request().Context(), reporterID, reviewID, req.Reason, clientIP)
	if err != nil {
		return flagError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordFlagRaised()
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":     f.ID,
		"status": f.Status,
	})
}

// ListFlags godoc
// @Summary List moderation flags
// @Tags Flags
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{} "Flags"
// @Router /admin/flags [get]
func (h *FlagHandler) ListFlags(c echo.Context) error {
	var p models.Pagination
	if err := c.Bind(&p); err != nil {
		return errors.ValidationError(c, err)
	}

	flags, total, err := h.service.ListFlags(c.Request().Context(), p, c.QueryParam("status"))
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	payload := make([]map[string]interface{}, len(flags))
	for i, f := range flags {
		payload[i] = flagPayload(f)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"flags": payload,
		"total": total,
	})
}

// GetFlag godoc
// @Summary Get a moderation flag
// @Tags Flags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Flag ID"
// @Success 200 {object} map[string]interface{} "Flag"
// @Failure 404 {object} models.ErrorResponse "Flag not found"
// @Router /admin/flags/{id} [get]
func (h *FlagHandler) GetFlag(c echo.Context) error {
	var flagID int
	if err := echo.PathParamsBinder(c).Int("id", &flagID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid flag ID",
		})
	}

	f, err := h.service.GetFlag(c.Request().Context(), flagID)
	if err != nil {
		return flagError(c, err)
	}

	return c.JSON(http.StatusOK, flagPayload(f))
}

// ModerateFlag godoc
// @Summary Decide a moderation flag
// @Description Move a flag to reviewed, resolved or rejected. Resolved and rejected are terminal.
// @Tags Flags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Flag ID"
// @Param request body models.ModerateFlagRequest true "New status"
// @Success 200 {object} map[string]interface{} "Flag updated"
// @Failure 404 {object} models.ErrorResponse "Flag not found"
// @Failure 409 {object} models.ErrorResponse "Flag already closed"
// @Router /admin/flags/{id} [patch]
func (h *FlagHandler) ModerateFlag(c echo.Context) error {
	var flagID int
	if err := echo.PathParamsBinder(c).Int("id", &flagID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid flag ID",
		})
	}

	var req models.ModerateFlagRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	var actorID *int
	if id, ok := c.Get("user_id").(int); ok {
		actorID = &id
	}

	updated, err := h.service.ModerateFlag(c.Request().Context(), flagID, req.Status, actorID)
	if err != nil {
		return flagError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":     updated.ID,
		"status": updated.Status,
	})
}

func flagPayload(f *ent.Flag) map[string]interface{} {
	payload := map[string]interface{}{
		"id":         f.ID,
		"review_id":  f.ReviewID,
		"reason":     f.Reason,
		"status":     f.Status,
		"created_at": f.CreatedAt,
	}
	if r := f.Edges.Review; r != nil {
		payload["review"] = map[string]interface{}{
			"id":    r.ID,
			"title": r.Title,
		}
	}
	if reporter := f.Edges.Reporter; reporter != nil {
		payload["reporter"] = map[string]interface{}{
			"id":   reporter.ID,
			"name": reporter.Name,
		}
	}
	return payload
}

// flagError maps flag sentinels to responses
func flagError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, flag.ErrReviewNotFound):
		return errors.DomainError(c, http.StatusNotFound, errors.CodeReviewNotFound, "Review not found")
	case goerrors.Is(err, flag.ErrFlagNotFound):
		return errors.NotFoundError(c, "flag")
	case goerrors.Is(err, flag.ErrFlagClosed):
		return errors.ConflictError(c, "This flag has already been resolved or rejected")
	case goerrors.Is(err, flag.ErrBannedUser):
		return errors.DomainError(c, http.StatusForbidden, errors.CodeUserNotAuthorized, "This account cannot submit content")
	default:
		return errors.InternalError(c, err)
	}
}
