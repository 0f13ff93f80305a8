package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/starchart/starchart/internal/adapters/api"
	"github.com/starchart/starchart/internal/adapters/jobs"
	"github.com/starchart/starchart/internal/adapters/repository"
	"github.com/starchart/starchart/internal/config"
	"github.com/starchart/starchart/internal/core/domain"
	"github.com/starchart/starchart/internal/core/ports"
	"github.com/starchart/starchart/internal/core/services"
	"github.com/starchart/starchart/internal/infrastructure/metrics"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("starchart: %v", err)
	}
}

func run() error {
	cfg, err := config.Load(envFile())
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	namer, err := domain.NewNamer(cfg.RootDomain)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("unable to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Warn("could not ping database", "error", err)
	}

	repo := repository.NewPostgresRepository(db)

	var jobStore ports.JobResultStore
	if cfg.RedisAddr != "" {
		store := jobs.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).WithPrefix(cfg.JobsPrefix)
		defer store.Close()
		jobStore = store
	} else {
		logger.Info("REDIS_ADDR not set, job results endpoint disabled")
	}

	svc := services.NewDomainService(namer, repo, jobStore)
	handler := api.NewAPIHandler(svc, repo, logger)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Instrument(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go reportDBStats(ctx, db)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("management API listening", "addr", cfg.HTTPAddr, "root_domain", namer.RootDomain())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func envFile() string {
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

func reportDBStats(ctx context.Context, db *sql.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.DBConnectionsActive.Set(float64(db.Stats().InUse))
		}
	}
}
