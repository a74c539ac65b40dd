package handlers

import (
	"net/http"
	"time"

	"github.com/docstore/docstore/internal/document/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

// RegisterHealth registers /health and /ready. redisClient may be nil when the
// Redis-backed limiter is not in use.
func RegisterHealth(r *gin.Engine, svc service.Service, redisClient *redis.Client) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: the store must exist; Redis must answer when it is wired in
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{"storage": svc != nil}
		if svc == nil {
			ready = false
		}
		if redisClient != nil {
			deps["redis"] = redisClient.Ping(c.Request.Context()).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		}

		body := gin.H{"deps": deps, "uptime": time.Since(startTime).String()}
		if svc != nil {
			body["documents"] = svc.Count()
		}
		if !ready {
			body["status"] = "not_ready"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		body["status"] = "ready"
		c.JSON(http.StatusOK, body)
	})
}
