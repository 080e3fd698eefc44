package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tablebook/internal/pkg/response"
)

// AccessChecker is the authorization collaborator: role + entity + operation
// in, verdict out. Failed lookups count as denials.
type AccessChecker interface {
	Can(ctx context.Context, role, entity, operation string) bool
}

// RequireAccess builds the per-route guard used at registration time:
// guard("restaurant", "read") blocks the request before the handler runs
// unless the actor's role holds that permission.
func RequireAccess(checker AccessChecker) func(entity, operation string) gin.HandlerFunc {
	return func(entity, operation string) gin.HandlerFunc {
		return func(c *gin.Context) {
			role := c.GetString("role")
			if role == "" {
				response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				c.Abort()
				return
			}

			if !checker.Can(c.Request.Context(), role, entity, operation) {
				response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
				c.Abort()
				return
			}

			c.Next()
		}
	}
}
