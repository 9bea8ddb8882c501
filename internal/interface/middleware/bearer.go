package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/api/internal/identity"
	"github.com/easyevent/api/pkg/helpers"
)

// BearerIdentity parses an optional Authorization bearer token and, when
// valid, threads the user id into the request context for the identity
// provider. Requests without a token pass through untouched; rejecting them
// is an authentication concern this API does not have yet.
func BearerIdentity(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if jwt == nil || auth == "" {
			c.Next()
			return
		}
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok {
			c.Next()
			return
		}
		claims, err := jwt.ParseToken(strings.TrimSpace(token))
		if err != nil {
			c.Next()
			return
		}
		ctx := identity.ContextWithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("userID", claims.UserID)
		c.Next()
	}
}
