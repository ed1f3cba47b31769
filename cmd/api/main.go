package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Hritik-Singh067/crm-backend/internal/api"
	"github.com/Hritik-Singh067/crm-backend/internal/infrastructure/config"
	crmmongo "github.com/Hritik-Singh067/crm-backend/internal/infrastructure/db/mongo"
	crmredis "github.com/Hritik-Singh067/crm-backend/internal/infrastructure/db/redis"
	"github.com/Hritik-Singh067/crm-backend/internal/infrastructure/queue"
	"github.com/Hritik-Singh067/crm-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A document-store connection failure is fatal: nothing works without it.
	mongoClient, db, err := crmmongo.Connect(ctx, crmmongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connection to database established")

	if err := crmmongo.NewAdminRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin indexes failed")
	}
	if err := crmmongo.NewClientRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("client indexes failed")
	}
	if err := crmmongo.NewTransactionRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("transaction indexes failed")
	}

	rdb, err := crmredis.Connect(ctx, crmredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	writer := queue.NewWriter(0, log)
	writer.Start(ctx)

	e := api.NewRouter(db, rdb, writer, cfg.SessionSecret, cfg.SessionTTL, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
