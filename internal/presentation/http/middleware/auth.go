package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salestrack-api/internal/presentation/http/dto/response"
)

// OperatorKey is the gin context key holding the authenticated operator name
const OperatorKey = "operator"

// TokenAuthenticator validates a bearer token and returns the operator name
type TokenAuthenticator interface {
	Enabled() bool
	Authenticate(token string) (string, error)
}

// GetOperator returns the authenticated operator, or "" when auth is disabled
func GetOperator(c *gin.Context) string {
	return c.GetString(OperatorKey)
}

// AuthMiddleware requires a valid bearer token. When the authenticator is
// disabled every request passes through unauthenticated.
func AuthMiddleware(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.Enabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		operator, err := auth.Authenticate(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(OperatorKey, operator)
		c.Next()
	}
}
