package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/H-Ngomijana/ERM/internal/infra/config"
	"github.com/H-Ngomijana/ERM/internal/infra/postgres"
	"github.com/H-Ngomijana/ERM/internal/usecase"
	"github.com/H-Ngomijana/ERM/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// One-shot RLS policy migration: connect, invoke the exec_sql RPC with the
// policy batch, print the status row, exit. Any failure exits non-zero.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: load config:", err)
		return 1
	}
	if cfg.DatabaseURL == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		return 1
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: init logger:", err)
		return 1
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("connect to database", zap.Error(err))
		return 1
	}
	defer pool.Close()

	migration := usecase.NewRLSMigration(postgres.NewExecutor(pool), log)
	status, err := migration.Run(ctx)
	if err != nil {
		log.Error("migration failed", zap.Error(err))
		return 1
	}

	fmt.Println(status)
	return 0
}
