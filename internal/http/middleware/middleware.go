package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimer records per-request wall time on the response header.
func RequestTimer() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		c.Header("X-Response-Time", time.Since(start).String())
	}
}
