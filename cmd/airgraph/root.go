package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmcosta-dev/airgraph/internal/config"
	"github.com/lmcosta-dev/airgraph/internal/database"
	"github.com/lmcosta-dev/airgraph/internal/graph"
	"github.com/lmcosta-dev/airgraph/internal/store"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "airgraph",
	Short: "Airport flight-route graph explorer",
	Long:  `AirGraph builds a directed graph of airports and flight routes from OpenFlights data and answers trip planning and network analysis queries over it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		setupLogging()
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else {
		switch cfg.Log.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// openGraph opens the database, runs migrations and loads the full route
// graph into memory. The caller owns the returned DB handle.
func openGraph() (*graph.Graph, *database.DB, error) {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	loader := graph.NewLoader(store.New(db))
	g, err := loader.Load()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("loading graph: %w", err)
	}

	if g.NodeCount() == 0 {
		db.Close()
		return nil, nil, fmt.Errorf("graph is empty - use 'airgraph import' to load route data first")
	}

	return g, db, nil
}
