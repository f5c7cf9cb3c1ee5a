package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
)

// SSEMiddleware sets event-stream headers and keeps the connection alive
// with comment lines while the pipeline works.
func SSEMiddleware(workerPool *ants.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")

		clientGone := c.Request.Context().Done()
		done := make(chan struct{})

		err := workerPool.Submit(func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
						return
					}
					c.Writer.Flush()
				case <-clientGone:
					return
				case <-done:
					return
				}
			}
		})
		if err != nil {
			c.AbortWithStatusJSON(500, gin.H{"error": err.Error()})
			return
		}

		c.Next()
		close(done)
	}
}
