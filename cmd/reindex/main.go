// Command reindex backfills product types for every product that has not
// been through classification yet. It is meant to run as a one-shot job
// (cron or manual) against the same catalog store as the API server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cadeso/searchapi/internal/classify"
	"github.com/cadeso/searchapi/internal/config"
	"github.com/cadeso/searchapi/internal/db"
	logpkg "github.com/cadeso/searchapi/internal/logger"
	"github.com/cadeso/searchapi/internal/repository/catalog"
	classifyuc "github.com/cadeso/searchapi/internal/usecase/classify"
	"github.com/cadeso/searchapi/internal/version"
)

func main() {
	batchSize := flag.Int("batch-size", 0, "override the configured backfill batch size")
	flag.Parse()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting type backfill",
		zap.String("version", version.Version),
		zap.String("env", env),
		zap.String("db_host", cfg.Database.Host),
		zap.String("db_name", cfg.Database.Name),
	)

	// Cancel the run on SIGTERM so a partially applied batch is the worst case.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := db.WaitForReady(ctx, pool, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Catalog store not ready", zap.Error(err))
	}

	size := cfg.Search.ReindexBatchSize
	if *batchSize > 0 {
		size = *batchSize
	}

	svc := classifyuc.New(catalog.New(pool), classify.New(), logger).
		WithBatchSize(size)

	start := time.Now()
	stats, err := svc.Run(ctx)
	if err != nil {
		logger.Fatal("Backfill failed",
			zap.Error(err),
			zap.Int("processed", stats.Processed),
			zap.Int("batches", stats.Batches),
		)
	}

	logger.Info("Backfill complete",
		zap.Int("processed", stats.Processed),
		zap.Int("classified", stats.Classified),
		zap.Int("batches", stats.Batches),
		zap.Duration("took", time.Since(start)),
	)
}
