// Package server assembles the HTTP engine that fronts the document store.
package server

import (
	"time"

	"github.com/docstore/docstore/handlers"
	"github.com/docstore/docstore/internal/config"
	"github.com/docstore/docstore/internal/document/handler"
	"github.com/docstore/docstore/internal/document/service"
	"github.com/docstore/docstore/pkg/logger"
	"github.com/docstore/docstore/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// New builds the gin engine. redisClient is optional; when it is set and
// Redis rate limiting is enabled, the shared fixed-window limiter is used.
func New(cfg *config.Config, svc service.Service, redisClient *redis.Client) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Lightweight CORS middleware: set common headers and respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})
	r.Use(requestLogger(), gin.Recovery())

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			logger.Infof("rate limiter: redis (rps=%v burst=%d window=%s)", cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiter: memory (rps=%v burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	handlers.RegisterHealth(r, svc, redisClient)
	handlers.RegisterSwagger(r)
	handler.RegisterDocumentRoutes(r, svc)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logger.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request")
	}
}
