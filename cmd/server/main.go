package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/belezagestao/salon-system/internal/api"
	"github.com/belezagestao/salon-system/internal/core/ports"
	"github.com/belezagestao/salon-system/internal/core/store"
	"github.com/belezagestao/salon-system/internal/infrastructure/config"
	kvmemory "github.com/belezagestao/salon-system/internal/infrastructure/kv/memory"
	kvmongo "github.com/belezagestao/salon-system/internal/infrastructure/kv/mongo"
	kvredis "github.com/belezagestao/salon-system/internal/infrastructure/kv/redis"
	kvsqlite "github.com/belezagestao/salon-system/internal/infrastructure/kv/sqlite"
	"github.com/belezagestao/salon-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	kv, err := openKV(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("storage init failed")
	}

	st, err := store.New(ctx, kv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}

	e := api.NewRouter(st, cfg.JWTSecret, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("storage", cfg.Storage.Driver).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	// Stop the store last so every mutation taken by in-flight requests
	// is flushed to the persisted store.
	if err := st.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("store close failed")
	}
}

func openKV(ctx context.Context, cfg config.StorageConfig) (ports.KV, error) {
	switch cfg.Driver {
	case "sqlite":
		return kvsqlite.Open(ctx, cfg.SQLitePath)
	case "redis":
		return kvredis.Connect(ctx, kvredis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	case "mongo":
		return kvmongo.Connect(ctx, kvmongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	case "memory":
		return kvmemory.New(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
