package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/pkg/auth"
	"github.com/jordanlanch/squadscore/pkg/models"
	"github.com/labstack/echo/v4"
)

// JWTMiddleware creates a JWT authentication middleware
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return JWTMiddlewareWithBlacklist(secret, nil, nil)
}

// JWTMiddlewareWithBlacklist creates a JWT authentication middleware with blacklist support
func JWTMiddlewareWithBlacklist(secret string, blacklist *auth.TokenBlacklist, db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string

			// Get authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "missing_token",
					Message: "Authorization header is required",
				})
			}

			// Check Bearer prefix
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token_format",
					Message: "Authorization header must be 'Bearer {token}'",
				})
			}

			token = parts[1]

			// Create context with timeout
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			// Validate JWT with blacklist check
			claims, err := auth.ValidateJWTWithBlacklist(ctx, token, secret, blacklist)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: err.Error(),
				})
			}

			// Reject banned accounts
			if db != nil {
				user, err := db.User.Get(ctx, claims.UserID)
				if err != nil {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
						Error:   "user_not_found",
						Message: "User account not found",
					})
				}

				if user.IsBanned {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
						Error:   "account_banned",
						Message: "This account has been banned",
					})
				}
			}

			// Store token in context for potential logout
			c.Set("token", token)

			// Set user info in context
			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}

// OptionalJWTMiddleware validates a token when one is present but lets
// anonymous requests through. Public listings use this so logged-in
// callers still get personalized fields.
func OptionalJWTMiddleware(secret string, blacklist *auth.TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			claims, err := auth.ValidateJWTWithBlacklist(ctx, parts[1], secret, blacklist)
			if err != nil {
				// Invalid tokens on optional routes degrade to anonymous
				return next(c)
			}

			c.Set("token", parts[1])
			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}
