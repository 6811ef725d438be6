// @title           Veterinary Clinic API
// @version         1.0
// @description     Record-management API for a veterinary clinic: accounts, tutors, patients and staff.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vetcare/clinic-api/internal/api"
	"github.com/vetcare/clinic-api/internal/infrastructure/config"
	mongodb "github.com/vetcare/clinic-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vetcare/clinic-api/internal/infrastructure/db/redis"
	"github.com/vetcare/clinic-api/internal/infrastructure/storage"
	"github.com/vetcare/clinic-api/internal/token"
	"github.com/vetcare/clinic-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; config failures (including a missing
		// JWT_SECRET) must still abort startup loudly.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env != "production",
	})

	issuer, err := token.NewIssuer(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("token issuer init failed")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	images, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("image store init failed")
	}

	e := api.NewRouter(db, rdb, issuer, images, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
