package middleware

import (
	"net/http"

	"realty/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to one role. This is the shell-side
// guard; the registry's role sessions enforce the same contract at the
// type level.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		if role.(string) != requiredRole {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}
