package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	corecfg "github.com/aevon-lab/ebs/internal/core/config"
	"github.com/aevon-lab/ebs/internal/core/storage/postgres"
	"github.com/aevon-lab/ebs/internal/migrations"
	"github.com/aevon-lab/ebs/internal/seed"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ebs-seed",
	Short: "Populate or purge the events table",
	Long: `ebs-seed fills the events table with randomly generated events for
local development and report testing.

Examples:
  # Generate a week of events, about 1000 per day
  ebs-seed generate --days 7 --events-per-day 1000

  # Remove every stored event
  ebs-seed purge --config config.yaml`,
	SilenceUsage: true,
}

var (
	configPath   string
	days         int
	eventsPerDay int
	workers      int
	randSeed     int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random events for the days before today",
	RunE: func(cmd *cobra.Command, args []string) error {
		if days <= 0 || eventsPerDay <= 0 {
			return fmt.Errorf("--days and --events-per-day must be positive")
		}

		adapter, err := openAdapter()
		if err != nil {
			return err
		}
		defer adapter.Close()

		if randSeed == 0 {
			randSeed = time.Now().UnixNano()
		}
		gen := seed.NewGenerator(rand.New(rand.NewSource(randSeed)), time.Now())

		events, err := gen.Events(days, eventsPerDay)
		if err != nil {
			return err
		}
		slog.Info("[Seed] Generated events", "count", len(events), "days", days, "seed", randSeed)

		stats, err := seed.Load(cmd.Context(), adapter, events, workers)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}

		fmt.Printf("Inserted %d events (%d duplicates skipped)\n", stats.Inserted, stats.Duplicates)
		return nil
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every stored event",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, err := openAdapter()
		if err != nil {
			return err
		}
		defer adapter.Close()

		n, err := adapter.DeleteAllEvents(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Deleted %d events\n", n)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")

	generateCmd.Flags().IntVar(&days, "days", 7, "Number of days before today to generate")
	generateCmd.Flags().IntVar(&eventsPerDay, "events-per-day", 1000, "Average number of events per day")
	generateCmd.Flags().IntVar(&workers, "workers", 8, "Concurrent inserts")
	generateCmd.Flags().Int64Var(&randSeed, "seed", 0, "Random seed (default: current time)")

	rootCmd.AddCommand(generateCmd, purgeCmd)
}

// openAdapter connects using the loaded config and applies migrations first.
func openAdapter() (*postgres.Adapter, error) {
	cfg, err := corecfg.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		return nil, err
	}

	if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate); err != nil {
		db.Close()
		return nil, err
	}

	adapter, err := postgres.NewAdapterWithDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return adapter, nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
