package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pitchbridge/pitchbridge-api/internal/api"
	"github.com/pitchbridge/pitchbridge-api/internal/infrastructure/config"
	mongodb "github.com/pitchbridge/pitchbridge-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pitchbridge/pitchbridge-api/internal/infrastructure/db/redis"
	"github.com/pitchbridge/pitchbridge-api/internal/infrastructure/queue"
	"github.com/pitchbridge/pitchbridge-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           PitchBridge API
// @version         1.0
// @description     Startup and investor marketplace: profiles, pitches, meetings and messaging.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewStartupRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("startup index creation failed")
	}
	if err := mongodb.NewPitchRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("pitch index creation failed")
	}

	// --- Redis (login throttle + readiness) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	// --- Notification dispatcher ---
	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, mongodb.NewNotificationRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
