package middleware

import (
	"net/http"
	"strings"

	"luxebeauty/utils"

	"github.com/gin-gonic/gin"
)

// AuthEmailKey is the gin context key carrying the authenticated email.
const AuthEmailKey = "authEmail"

// JWTAuthMiddleware validates the Bearer token and stores the session email
// on the context for downstream handlers.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(AuthEmailKey, email)
		c.Next()
	}
}
