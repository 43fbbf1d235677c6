package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/aevon-lab/ebs/internal/core/config"
	"github.com/aevon-lab/ebs/internal/core/query"
	"github.com/aevon-lab/ebs/internal/core/storage/postgres"
	"github.com/aevon-lab/ebs/internal/events"
	"github.com/aevon-lab/ebs/internal/migrations"
	"github.com/aevon-lab/ebs/internal/report"
	"github.com/aevon-lab/ebs/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Server.Mode == "debug" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	slog.Info("Loaded config",
		"server_addr", fmtAddr(cfg.Server.Host, cfg.Server.Port),
		"mode", cfg.Server.Mode,
		"auto_migrate", cfg.Database.AutoMigrate,
		"default_page_limit", cfg.Report.DefaultPageLimit,
		"query_timeout", cfg.Report.QueryTimeout)

	// 2. Connect and migrate before preparing statements against the events table
	db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		db.Close()
		os.Exit(1)
	}

	// 3. Initialize Storage (PostgreSQL)
	dbAdapter, err := postgres.NewAdapterWithDB(db)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		db.Close()
		os.Exit(1)
	}
	defer dbAdapter.Close()

	reportAdapter := postgres.NewReportAdapter(dbAdapter.DB())

	// 4. Initialize Services
	eventsSvc := events.NewService(dbAdapter, cfg.Server.MaxBodySizeMB)
	reportSvc := report.NewService(
		reportAdapter,
		query.Defaults{PageLimit: cfg.Report.DefaultPageLimit},
		cfg.Report.QueryTimeoutDuration(),
	)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter.DB(), cfg.Server.Mode)
	eventsSvc.RegisterRoutes(srv.Engine)
	reportSvc.RegisterRoutes(srv.Engine)

	// 6. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
