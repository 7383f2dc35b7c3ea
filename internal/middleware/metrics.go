package middleware

import (
	"time"

	"github.com/rishiboppana/stayhub/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		metrics.RequestStarted()

		c.Next()

		metrics.RequestFinished(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
