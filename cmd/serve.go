package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/docstore/docstore/internal/config"
	"github.com/docstore/docstore/internal/document/repository"
	"github.com/docstore/docstore/internal/document/seed"
	"github.com/docstore/docstore/internal/document/service"
	"github.com/docstore/docstore/internal/ids"
	"github.com/docstore/docstore/internal/server"
	"github.com/docstore/docstore/pkg/logger"
	"github.com/docstore/docstore/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the document store over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if !cmd.Flags().Changed("log-level") {
			logger.Init(cfg.Log.Level)
		}
		logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

		svc, err := newService(cfg)
		if err != nil {
			return err
		}

		var redisClient *redis.Client
		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
			client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
			if err := client.Ping(cmd.Context()).Err(); err != nil {
				logger.Warnf("failed to connect to Redis (%s): %v; using in-memory rate limiter", cfg.Redis.Addr(), err)
				_ = client.Close()
			} else {
				logger.Infof("connected to Redis for rate limiting: %s", cfg.Redis.Addr())
				redisClient = client
				defer client.Close()
			}
		}

		metrics.RegisterCollectors(prometheus.DefaultRegisterer)
		engine := server.New(cfg, svc, redisClient)

		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		srv := &http.Server{
			Addr:         addr,
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Infof("docstore listening on %s (id format %s, %d documents)", addr, cfg.Store.IDFormat, svc.Count())
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}
		logger.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// newService builds the store from configuration and applies the seed file, if any.
func newService(cfg *config.Config) (service.Service, error) {
	gen, err := ids.ForFormat(cfg.Store.IDFormat)
	if err != nil {
		return nil, err
	}
	svc := service.NewMemoryService(repository.WithIDGenerator(gen))
	if cfg.Store.SeedFile != "" {
		n, err := seed.LoadInto(svc, cfg.Store.SeedFile)
		if err != nil {
			return nil, err
		}
		logger.Infof("seeded %d documents from %s", n, cfg.Store.SeedFile)
	}
	return svc, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
