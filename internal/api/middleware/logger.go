package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger records one line per request in the same "[component] ..." style
// used by the handlers and engine packages.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Printf("[http] %s %s status=%d latency=%s",
			c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
