package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tarekelbanna92/rental-egypt/models"
	"github.com/tarekelbanna92/rental-egypt/utils"
)

const (
	ctxUserIDKey = "userID"
	ctxRoleKey   = "userRole"
)

// RequireAuth validates the Bearer token and stores the caller's id and role
// in the gin context for handlers downstream.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.JSONError(c, http.StatusUnauthorized, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(secret, parts[1])
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireHost is the single role gate for host-only routes; ownership of the
// specific listing is still checked in the service layer.
func RequireHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ctxRoleKey)
		if !ok || role != models.RoleHost {
			utils.JSONError(c, http.StatusForbidden, "host role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by RequireAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
