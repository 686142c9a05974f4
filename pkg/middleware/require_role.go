package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/user"
	"github.com/labstack/echo/v4"
)

// RequireRole middleware ensures the authenticated user holds one of
// the given roles. The role is read from the database, not the token,
// so demotions take effect immediately.
// This middleware should be applied AFTER JWT authentication middleware
func RequireRole(db *ent.Client, roles ...user.Role) echo.MiddlewareFunc {
	allowed := make(map[user.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get user ID from context (set by JWT middleware)
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Authentication required",
				})
			}

			// Create context with timeout for database query
			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			u, err := db.User.Get(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "user_not_found",
					"message": "User not found",
				})
			}

			// Site admins pass every role gate
			if !allowed[u.Role] && u.Role != user.RoleSiteAdmin {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":   "insufficient_permissions",
					"message": "You do not have the required role",
					"details": map[string]interface{}{
						"current_role": u.Role.String(),
					},
				})
			}

			// Store user role in context for further use
			c.Set("user_role", u.Role.String())

			return next(c)
		}
	}
}

// RequireSiteAdmin ensures the authenticated user is a site admin.
// Use this for moderation and other sensitive operations.
func RequireSiteAdmin(db *ent.Client) echo.MiddlewareFunc {
	return RequireRole(db, user.RoleSiteAdmin)
}
