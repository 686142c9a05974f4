package errors

import (
	"log"
	"net/http"

	"github.com/jordanlanch/squadscore/pkg/models"
	"github.com/labstack/echo/v4"
)

// Stable machine-readable codes returned in the "error" field.
// Clients branch on these, so they never change.
const (
	CodeInvalidPlanOrPrice = "INVALID_PLAN_OR_STRIPE_PRICE"
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodeOrgNotFound        = "ORGANIZATION_NOT_FOUND"
	CodeSomethingWentWrong = "SOMETHING_WENT_WRONG"
	CodePlanNotSupported   = "PLAN_NOT_SUPPORTED"
	CodeReviewNotFound     = "REVIEW_NOT_FOUND"
	CodeInvalidTargetID    = "INVALID_TARGET_ID"
	CodeUserNotAuthorized  = "USER_NOT_AUTHORIZED"
)

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// DatabaseError returns a generic database error without exposing internal details
func DatabaseError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[DATABASE ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "database_error",
		Message: "A database error occurred. Please try again later.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context, reason string) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// ForbiddenError returns a generic forbidden error
func ForbiddenError(c echo.Context, reason string) error {
	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   "forbidden",
		Message: "You do not have permission to access this resource.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// ConflictError returns a generic conflict error
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message, // Message is safe to expose (e.g., "User already exists")
	})
}

// DomainError returns a domain failure with its stable code
func DomainError(c echo.Context, status int, code, message string) error {
	log.Printf("[DOMAIN ERROR] Path: %s, Code: %s", c.Request().URL.Path, code)

	return c.JSON(status, models.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
