package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dycart/fleet-backoffice/pkg/metrics"
)

// Verifier is the minimal interface the middleware depends on
type Verifier interface {
	Verify(ctx context.Context, raw string) (map[string]interface{}, error)
}

// AuthMiddleware returns a Gin middleware that verifies Bearer tokens using
// the provided verifier. Every failure is answered with the same 401
// envelope; the distinct cause (bad signature, wrong type, expired) is only
// visible in logs and metrics.
func AuthMiddleware(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			unauthorized(c, "missing")
			return
		}
		// Expect 'Bearer <token>'
		var token string
		if n, _ := fmt.Sscanf(auth, "Bearer %s", &token); n != 1 {
			unauthorized(c, "malformed_header")
			return
		}

		claims, err := ver.Verify(c.Request.Context(), token)
		if err != nil {
			unauthorized(c, "invalid_token")
			return
		}

		c.Set("claims", claims)
		c.Set("accessToken", token)
		c.Next()
	}
}

func unauthorized(c *gin.Context, cause string) {
	metrics.AuthFailures.WithLabelValues(cause).Inc()
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": "UNAUTHORIZED", "message": "인증이 필요합니다."},
	})
}
