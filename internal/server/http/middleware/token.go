package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// TokenContextKey is a gin context key for the caller's session token.
	TokenContextKey = "checkoutToken"
	tokenHeader     = "token"
)

// TokenExtractor copies the session token header into the request context.
// A missing token is not rejected here; the flow guard decides what an
// unauthenticated attempt means.
func TokenExtractor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := strings.TrimSpace(c.GetHeader(tokenHeader)); token != "" {
			c.Set(TokenContextKey, token)
		}
		c.Next()
	}
}
