package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/squadscore/pkg/api/errors"
	"github.com/jordanlanch/squadscore/pkg/metrics"
	"github.com/jordanlanch/squadscore/pkg/models"
	"github.com/jordanlanch/squadscore/pkg/response"
)

// ResponseHandler handles organization responses to reviews
type ResponseHandler struct {
	service   *response.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(service *response.Service, m *metrics.Metrics) *ResponseHandler {
	return &ResponseHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// Respond godoc
// @Summary Respond to a review
// @Description Post or replace the organization's response to a review. Requires a pro or elite plan on the reviewed team.
// @Tags Responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reviewId path int true "Review ID"
// @Param request body models.ResponseRequest true "Response body"
// @Success 200 {object} map[string]interface{} "Response saved"
// @Failure 403 {object} models.ErrorResponse "Plan does not support responses"
// @Failure 404 {object} models.ErrorResponse "Review not found"
// @Router /reviews/{reviewId}/response [put]
func (h *ResponseHandler) Respond(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	var reviewID int
	if err := echo.PathParamsBinder(c).Int("reviewId", &reviewID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
	}

	var req models.ResponseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.service.RespondToReview(c.Request().Context(), userID, reviewID, req)
	if err != nil {
		return responseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordResponseCreated()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":         resp.ID,
		"review_id":  resp.ReviewID,
		"body":       resp.Body,
		"updated_at": resp.UpdatedAt,
	})
}

// Get godoc
// @Summary Get the response to a review
// @Tags Responses
// @Produce json
// @Param reviewId path int true "Review ID"
// @Success 200 {object} map[string]interface{} "Response"
// @Failure 404 {object} models.ErrorResponse "No response for this review"
// @Router /reviews/{reviewId}/response [get]
func (h *ResponseHandler) Get(c echo.Context) error {
	var reviewID int
	if err := echo.PathParamsBinder(c).Int("reviewId", &reviewID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
	}

	resp, err := h.service.GetResponse(c.Request().Context(), reviewID)
	if err != nil {
		return responseError(c, err)
	}

	payload := map[string]interface{}{
		"id":         resp.ID,
		"review_id":  resp.ReviewID,
		"body":       resp.Body,
		"created_at": resp.CreatedAt,
		"updated_at": resp.UpdatedAt,
	}
	if responder := resp.Edges.Responder; responder != nil {
		payload["responder"] = map[string]interface{}{
			"id":   responder.ID,
			"name": responder.Name,
		}
	}

	return c.JSON(http.StatusOK, payload)
}

// Delete godoc
// @Summary Delete the response to a review
// @Description Removing a response is not plan-gated, so lapsed plans can still take responses down
// @Tags Responses
// @Produce json
// @Security BearerAuth
// @Param reviewId path int true "Review ID"
// @Success 200 {object} map[string]string "Response deleted"
// @Failure 404 {object} models.ErrorResponse "No response for this review"
// @Router /reviews/{reviewId}/response [delete]
func (h *ResponseHandler) Delete(c echo.Context) error {
	var reviewID int
	if err := echo.PathParamsBinder(c).Int("reviewId", &reviewID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID",
		})
	}

	if err := h.service.DeleteResponse(c.Request().Context(), reviewID); err != nil {
		return responseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Response deleted",
	})
}

// responseError maps response sentinels to their stable response codes
func responseError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, response.ErrPlanNotSupported):
		return errors.DomainError(c, http.StatusForbidden, errors.CodePlanNotSupported, "The team's plan does not include review responses")
	case goerrors.Is(err, response.ErrReviewNotFound):
		return errors.DomainError(c, http.StatusNotFound, errors.CodeReviewNotFound, "Review not found")
	case goerrors.Is(err, response.ErrResponseNotFound):
		return errors.NotFoundError(c, "response")
	default:
		return errors.InternalError(c, err)
	}
}
