package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lmcosta-dev/airgraph/internal/database"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	stats, err := db.Stats()
	if err != nil {
		return fmt.Errorf("getting stats: %w", err)
	}

	fmt.Printf("Database: %s\n", cfg.Database.Path)
	fmt.Printf("Size:     %s\n\n", humanize.Bytes(uint64(stats.DatabaseSizeBytes)))

	fmt.Printf("Airports: %s\n", humanize.Comma(stats.Airports))
	fmt.Printf("Airlines: %s\n", humanize.Comma(stats.Airlines))
	fmt.Printf("Routes:   %s\n", humanize.Comma(stats.Routes))
	fmt.Printf("Flights:  %s\n", humanize.Comma(stats.Flights))

	return nil
}
