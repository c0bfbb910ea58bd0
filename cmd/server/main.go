package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/api"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/infrastructure/config"
	mongodb "github.com/pradeep1865/websiteFromStitchDesign/internal/infrastructure/db/mongo"
	redisdb "github.com/pradeep1865/websiteFromStitchDesign/internal/infrastructure/db/redis"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/infrastructure/store"
	"github.com/pradeep1865/websiteFromStitchDesign/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Storefront API
// @version      1.0
// @description  Authentication and product catalog service for the storefront web app.

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Env == "development")

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("JWT_SECRET must be set outside development")
		}
		cfg.JWTSecret = "dev-secret-do-not-use-in-production"
		log.Warn().Msg("JWT_SECRET not set, using development fallback")
	}

	// Redis is optional: without it the API runs with login throttling
	// disabled.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(context.Background(), redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unreachable, login throttling disabled")
		} else {
			rdb = client
		}
	}

	st := store.New(mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	}, log)

	e := api.NewRouter(cfg, st, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := st.Close(ctx); err != nil {
		log.Error().Err(err).Msg("closing record store failed")
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("closing redis failed")
		}
	}
}
