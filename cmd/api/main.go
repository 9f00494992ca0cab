package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bankcore/client-registry/internal/api"
	"github.com/bankcore/client-registry/internal/core/service"
	"github.com/bankcore/client-registry/internal/infrastructure/config"
	mongodb "github.com/bankcore/client-registry/internal/infrastructure/db/mongo"
	redisdb "github.com/bankcore/client-registry/internal/infrastructure/db/redis"
	"github.com/bankcore/client-registry/pkg/logger"
)

// @title           Client Registry API
// @version         1.0
// @description     Bank client registry and banking-product subscription API.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	clientRepo := mongodb.NewClientRepository(db)
	if err := clientRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure client indexes")
	}

	// The catalog must be complete before the API validates product
	// subscriptions, so seeding runs before the server starts listening.
	productRepo := mongodb.NewProductRepository(db)
	seeder := service.NewCatalogSeeder(productRepo, log)
	if err := seeder.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("bank product catalog seeding failed")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	// A listen failure cancels ctx so the deferred mongo/redis closers
	// still run.
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting client registry API")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
