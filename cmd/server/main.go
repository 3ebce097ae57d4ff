package main

import (
	"context"
	stdlog "log"

	"github.com/redis/go-redis/v9"

	"github.com/harvestly/farmbook-api/internal/api"
	"github.com/harvestly/farmbook-api/internal/infrastructure/db/mongo"
	redisdb "github.com/harvestly/farmbook-api/internal/infrastructure/db/redis"
	"github.com/harvestly/farmbook-api/internal/pkg/config"
	"github.com/harvestly/farmbook-api/pkg/logger"
)

// @title        Farmbook API
// @version      1.0
// @description  Backend API for browsing farms, submitting reviews, and booking harvest-experience visits.
// @BasePath     /api
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		stdlog.Fatalf("failed to load configuration: %v", err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// A missing connection string and an unreachable store are different
	// operator mistakes; log them apart. Neither is fatal: requests fail
	// with storage-unavailable until the store can be reached.
	store := mongo.NewStore(mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database}, log)
	switch {
	case cfg.Mongo.URI == "":
		log.Error().Msg("MONGO_URI is not set; all storage requests will fail until it is configured")
	default:
		if err := store.Connect(ctx); err != nil {
			log.Error().Err(err).Msg("mongodb unreachable at startup; requests will keep retrying")
		}
	}
	defer func() {
		if err := store.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable; farm cache disabled")
			rdb = nil
		}
	}

	e := api.NewRouter(store, rdb, log)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
