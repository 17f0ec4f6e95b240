package middlewares

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Readiness interface {
	Ready(ctx context.Context) bool
}

// RequireStore rejects requests with a clean 503 while the document store
// is unreachable, instead of letting handlers fail against a dead handle.
func RequireStore(store Readiness) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Ready(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"msg":   "Service unavailable",
				"error": "database not connected",
			})
			return
		}
		c.Next()
	}
}
