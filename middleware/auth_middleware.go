package middleware

import (
	"net/http"
	"strings"

	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session token and stores the caller's user
// and role references in the request context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			return
		}

		claims, err := services.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set("uuid", claims.UUID)
		c.Set("authUuid", claims.AuthUUID)
		c.Next()
	}
}

// extractToken reads the session cookie, falling back to a Bearer header
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
