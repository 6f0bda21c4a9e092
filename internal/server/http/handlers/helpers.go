package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/platefront/checkout/internal/server/http/middleware"
)

// CurrentToken extracts the caller's session token from context.
func CurrentToken(c *gin.Context) string {
	val, ok := c.Get(middleware.TokenContextKey)
	if !ok {
		return ""
	}
	token, _ := val.(string)
	return token
}
