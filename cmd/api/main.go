package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ishantswami13-crypto/vantro-ledger/internal/config"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/logging"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/reports"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/router"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/session"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/transactions"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("error creating pgx pool", zap.Error(err))
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("error pinging database", zap.Error(err))
	}

	codec := session.NewCodec(cfg.SessionSecret)
	if _, signed := codec.(session.SignedCodec); signed {
		logger.Info("session cookies are signed")
	}

	var limiterStorage fiber.Storage
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("error pinging redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		limiterStorage = router.NewRedisStorage(rdb)
		logger.Info("rate limiter uses redis", zap.String("addr", cfg.RedisAddr))
	}

	store := transactions.NewBreakerStore(transactions.NewRepo(pool), transactions.BreakerConfig{
		Logger: logger,
	})
	txnService := transactions.NewService(store)

	r := &router.Router{
		TransactionsHandler: transactions.NewHandler(txnService, codec),
		ReportsHandler:      reports.NewHandler(txnService),
		Codec:               codec,
		WriteLimiter:        router.RateLimitWrite(cfg.RateLimitMax, cfg.RateLimitWindow, limiterStorage),
		CORSOrigin:          cfg.CORSOrigin,
		Logger:              logger,
	}
	app := r.NewApp()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", zap.Error(err))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
