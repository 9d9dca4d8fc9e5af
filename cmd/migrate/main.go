package main

import (
	"errors"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/ishantswami13-crypto/vantro-ledger/internal/config"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/database"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/logging"
)

func main() {
	down := flag.Bool("down", false, "roll back every migration instead of applying them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	dir := cfg.MigrationsPath
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("applying migrations", zap.String("path", dir), zap.Bool("down", *down))
	err = database.Migrate(db, dir, *down)
	switch {
	case errors.Is(err, database.ErrNoChange):
		logger.Info("no new migrations found")
	case err != nil:
		logger.Fatal("error applying migrations", zap.Error(err))
	default:
		logger.Info("migrations applied")
	}
}
