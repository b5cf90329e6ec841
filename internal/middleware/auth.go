package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourism-backend-go/internal/service"
	"github.com/jengzang/tourism-backend-go/pkg/response"
)

// RequireAdmin middleware verifies the bearer token on admin-only routes and
// stores the token subject in the context
func RequireAdmin(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Unauthorized(c, "Authorization header must be a bearer token")
			c.Abort()
			return
		}

		subject, err := auth.Verify(strings.TrimSpace(token))
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("subject", subject)
		c.Next()
	}
}
