package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lmcosta-dev/airgraph/internal/database"
	"github.com/lmcosta-dev/airgraph/internal/neo4j"
)

var (
	syncBatchSize int
	syncClear     bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync route data from SQLite to Neo4j",
	Long: `Synchronize airports and routes from the SQLite database into a
Neo4j graph database for Cypher-based exploration.

Examples:
  airgraph sync
  airgraph sync --batch-size 1000
  airgraph sync --clear`,
	RunE: runSync,
}

var syncVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify sync consistency between SQLite and Neo4j",
	Long:  `Check that the airport and route counts match between SQLite and Neo4j.`,
	RunE:  runVerifySync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.AddCommand(syncVerifyCmd)

	syncCmd.Flags().IntVar(&syncBatchSize, "batch-size", 5000, "airports/routes to sync per batch")
	syncCmd.Flags().BoolVar(&syncClear, "clear", false, "clear the Neo4j database before syncing")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	client, err := connectNeo4j(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	if syncClear {
		slog.Info("clearing Neo4j database")
		if err := client.ClearDatabase(ctx); err != nil {
			return fmt.Errorf("clearing database: %w", err)
		}
	}

	syncer := neo4j.NewSyncer(client, db.DB)
	stats, err := syncer.InitialSync(ctx, syncBatchSize)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Printf("Sync complete:\n")
	fmt.Printf("  Airports: %d\n", stats.AirportsCreated)
	fmt.Printf("  Routes:   %d\n", stats.RoutesCreated)
	fmt.Printf("  Duration: %s\n", stats.Duration)

	return nil
}

func runVerifySync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	client, err := connectNeo4j(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	syncer := neo4j.NewSyncer(client, db.DB)
	return syncer.VerifySync(ctx)
}

func connectNeo4j(ctx context.Context) (*neo4j.Client, error) {
	slog.Info("connecting to Neo4j", "uri", cfg.Neo4j.URI)

	client, err := neo4j.NewClient(neo4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Neo4j client: %w", err)
	}

	if err := client.VerifyConnectivity(ctx); err != nil {
		client.Close(ctx)
		return nil, err
	}

	return client, nil
}
