package handlers

import (
	goerrors "errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/squadscore/pkg/api/errors"
	"github.com/jordanlanch/squadscore/pkg/billing"
	"github.com/jordanlanch/squadscore/pkg/models"
)

// BillingHandler handles subscription and payment endpoints
type BillingHandler struct {
	service   *billing.Service
	validator *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(service *billing.Service) *BillingHandler {
	return &BillingHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateCheckoutSession godoc
// @Summary Create a checkout session
// @Description Start a Stripe checkout for upgrading an organization or team plan
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CheckoutRequest true "Checkout request"
// @Success 200 {object} models.CheckoutResponse "Checkout session created"
// @Failure 400 {object} models.ErrorResponse "Invalid plan or target"
// @Failure 403 {object} models.ErrorResponse "Insufficient role for target"
// @Failure 404 {object} models.ErrorResponse "Target not found"
// @Router /billing/checkout-session [post]
func (h *BillingHandler) CreateCheckoutSession(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	// Org purchases need an org-level admin; team purchases also allow
	// team admins.
	role, _ := c.Get("user_role").(string)
	if !checkoutRoleAllowed(role, req.TeamID != nil) {
		return errors.DomainError(c, http.StatusForbidden, errors.CodeUserNotAuthorized, "Your role cannot purchase this subscription")
	}

	resp, err := h.service.CreateCheckoutSession(c.Request().Context(), userID, &req)
	if err != nil {
		return billingError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func checkoutRoleAllowed(role string, teamTarget bool) bool {
	switch role {
	case "site_admin", "org_admin":
		return true
	case "team_admin":
		return teamTarget
	default:
		return false
	}
}

// Webhook godoc
// @Summary Stripe webhook receiver
// @Description Receives Stripe events; only invoice.payment_succeeded mutates state
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {object} models.WebhookReceivedResponse "Event received"
// @Failure 400 {object} models.ErrorResponse "Invalid signature or payload"
// @Router /billing/webhook [post]
func (h *BillingHandler) Webhook(c echo.Context) error {
	// The signature covers the raw body, so it must be read untouched
	// before any binding.
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_payload",
			Message: "Failed to read request body",
		})
	}

	signature := c.Request().Header.Get("Stripe-Signature")

	if err := h.service.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		// 400 makes Stripe redeliver the event
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "webhook_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.WebhookReceivedResponse{Received: true})
}

// GetStatus godoc
// @Summary Get an organization's subscription status
// @Tags Billing
// @Produce json
// @Param organizationId path int true "Organization ID"
// @Success 200 {object} models.BillingStatusResponse "Subscription status"
// @Failure 404 {object} models.ErrorResponse "Organization not found"
// @Router /billing/status/{organizationId} [get]
func (h *BillingHandler) GetStatus(c echo.Context) error {
	var orgID int
	if err := echo.PathParamsBinder(c).Int("organizationId", &orgID).BindError(); err != nil {
		return errors.DomainError(c, http.StatusBadRequest, errors.CodeInvalidTargetID, "Invalid organization ID")
	}

	status, err := h.service.GetSubscriptionStatus(c.Request().Context(), orgID)
	if err != nil {
		return billingError(c, err)
	}

	return c.JSON(http.StatusOK, status)
}

// GetCheckoutSession godoc
// @Summary Look up a checkout session
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Stripe session ID"
// @Success 200 {object} models.CheckoutSessionInfo "Checkout session"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /billing/checkout-session/{sessionId} [get]
func (h *BillingHandler) GetCheckoutSession(c echo.Context) error {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_session_id",
			Message: "Session ID is required",
		})
	}

	info, err := h.service.GetCheckoutSession(c.Request().Context(), sessionID)
	if err != nil {
		return errors.NotFoundError(c, "checkout session")
	}

	return c.JSON(http.StatusOK, info)
}

// GetActiveCheckoutSession godoc
// @Summary Look up the live checkout session for a target and plan
// @Description Returns the most recent unpaid session; older unpaid rows are superseded attempts
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Param target_type query string true "organization or team"
// @Param target_id query int true "Target ID"
// @Param plan query string true "Plan name"
// @Success 200 {object} models.CheckoutSessionInfo "Checkout session"
// @Failure 404 {object} models.ErrorResponse "No unpaid session for this target and plan"
// @Router /billing/checkout-session [get]
func (h *BillingHandler) GetActiveCheckoutSession(c echo.Context) error {
	owner, err := ownerFromQuery(c)
	if err != nil {
		return err
	}

	planName := c.QueryParam("plan")
	if planName == "" {
		return errors.DomainError(c, http.StatusBadRequest, errors.CodeInvalidPlanOrPrice, "Plan is required")
	}

	info, err := h.service.ActiveCheckoutSession(c.Request().Context(), owner, planName)
	if err != nil {
		return errors.NotFoundError(c, "checkout session")
	}

	return c.JSON(http.StatusOK, info)
}

// ListTransactions godoc
// @Summary List a target's payment ledger
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Param target_type query string true "organization or team"
// @Param target_id query int true "Target ID"
// @Success 200 {object} map[string]interface{} "Transactions"
// @Failure 400 {object} models.ErrorResponse "Invalid target"
// @Router /billing/transactions [get]
func (h *BillingHandler) ListTransactions(c echo.Context) error {
	owner, err := ownerFromQuery(c)
	if err != nil {
		return err
	}

	txs, err := h.service.ListTransactions(c.Request().Context(), owner)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"transactions": txs,
		"count":        len(txs),
	})
}

// ownerFromQuery resolves a billing target from target_type/target_id
// query params. The returned error is already a JSON response.
func ownerFromQuery(c echo.Context) (billing.Owner, error) {
	var targetID int
	if err := echo.QueryParamsBinder(c).Int("target_id", &targetID).BindError(); err != nil || targetID <= 0 {
		return billing.Owner{}, errors.DomainError(c, http.StatusBadRequest, errors.CodeInvalidTargetID, "Invalid target ID")
	}

	switch c.QueryParam("target_type") {
	case "organization":
		return billing.OrgOwner(targetID), nil
	case "team":
		return billing.TeamOwner(targetID), nil
	default:
		return billing.Owner{}, errors.DomainError(c, http.StatusBadRequest, errors.CodeInvalidTargetID, "target_type must be organization or team")
	}
}

// billingError maps billing sentinels to their stable response codes
func billingError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, billing.ErrInvalidPlanOrPrice):
		return errors.DomainError(c, http.StatusBadRequest, errors.CodeInvalidPlanOrPrice, "Invalid plan or Stripe price")
	case goerrors.Is(err, billing.ErrTeamNotFound):
		return errors.DomainError(c, http.StatusNotFound, errors.CodeTeamNotFound, "Team not found")
	case goerrors.Is(err, billing.ErrOrganizationNotFound):
		return errors.DomainError(c, http.StatusNotFound, errors.CodeOrgNotFound, "Organization not found")
	case goerrors.Is(err, billing.ErrAmbiguousTarget):
		return errors.DomainError(c, http.StatusBadRequest, errors.CodeSomethingWentWrong, "Exactly one of organizationId or teamId must be provided")
	default:
		return errors.InternalError(c, err)
	}
}
