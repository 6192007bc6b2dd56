package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/customer-account-ledger/internal/config"
	"github.com/sheikh-saqib/customer-account-ledger/internal/events"
	kafkaevents "github.com/sheikh-saqib/customer-account-ledger/internal/events/kafka"
	"github.com/sheikh-saqib/customer-account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/customer-account-ledger/internal/ledger"
	"github.com/sheikh-saqib/customer-account-ledger/internal/server"
	"github.com/sheikh-saqib/customer-account-ledger/internal/storage/memory"
	"github.com/sheikh-saqib/customer-account-ledger/internal/storage/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on system env vars")
	}
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	store, cleanup, err := buildStore(cfg)
	if err != nil {
		logger.Fatal("failed to init store", zap.Error(err))
	}
	defer cleanup()

	var publisher interfaces.EventPublisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafkaevents.NewPublisher(cfg.KafkaBrokers)
		defer kp.Close()
		publisher = kp
	}

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
		})
		defer cache.Close()
	}

	svc := ledger.NewService(store, publisher, cache, logger)
	svc.SetCacheTTL(cfg.BalanceCacheTTL)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.New(svc, logger).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.Store))
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("shutting down gracefully")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}
}

func buildStore(cfg config.AppConfig) (interfaces.AccountStore, func(), error) {
	switch cfg.Store {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewPostgresAccountStore(db), func() { db.Close() }, nil
	default:
		return memory.NewMemoryAccountStore(), func() {}, nil
	}
}
