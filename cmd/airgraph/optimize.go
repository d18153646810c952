package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmcosta-dev/airgraph/internal/database"
)

var (
	optimizeVacuum     bool
	optimizeCheckpoint bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rebuild database query statistics",
	Long: `Run ANALYZE on the database to rebuild query planner statistics.

When to run:
  - After importing a fresh dataset
  - If queries seem slower than expected

Examples:
  airgraph optimize
  airgraph optimize --vacuum --checkpoint`,
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().BoolVar(&optimizeVacuum, "vacuum", false, "also VACUUM the database to reclaim space")
	optimizeCmd.Flags().BoolVar(&optimizeCheckpoint, "checkpoint", false, "also truncate the WAL")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	slog.Info("opening database", "path", cfg.Database.Path)

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	start := time.Now()

	slog.Info("running ANALYZE")
	if err := db.Analyze(); err != nil {
		return fmt.Errorf("ANALYZE failed: %w", err)
	}
	if err := db.Optimize(); err != nil {
		return fmt.Errorf("optimize failed: %w", err)
	}

	if optimizeVacuum {
		slog.Info("running VACUUM")
		if err := db.Vacuum(); err != nil {
			return fmt.Errorf("VACUUM failed: %w", err)
		}
	}

	if optimizeCheckpoint {
		slog.Info("checkpointing WAL")
		if err := db.Checkpoint(); err != nil {
			return fmt.Errorf("checkpoint failed: %w", err)
		}
	}

	fmt.Printf("Database optimized in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
