package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planvault/models"
)

// AdminMiddleware gates a route group to actors whose global role is admin.
// Must run after AuthMiddleware, which puts the token role into the context.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		if roleStr, ok := role.(string); !ok || models.Role(roleStr) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Admin privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
