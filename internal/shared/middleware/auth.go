package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookgallery-backend/pkg/jwt"
)

// ContextUserID is the gin context key the authenticated user id is
// stored under.
const ContextUserID = "userID"

// Auth validates the Bearer token on every request and places the
// authenticated user id into the context.
func Auth(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, []string{"Missing authorization header."})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, []string{"Invalid authorization header format."})
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, []string{"Invalid token."})
			return
		}

		userID, err := uuid.Parse(claims.Sid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, []string{"Invalid token."})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
