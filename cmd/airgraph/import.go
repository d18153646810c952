package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lmcosta-dev/airgraph/internal/database"
	"github.com/lmcosta-dev/airgraph/internal/ingest"
	"github.com/lmcosta-dev/airgraph/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <airports.csv> <airlines.csv> <flights.csv>",
	Short: "Import OpenFlights CSV data into the local database",
	Long: `Import airport, airline and flight route data from CSV files.

Accepts the raw OpenFlights .dat layouts as downloaded by 'airgraph fetch',
or simplified CSVs with a header row:
  airports: code, name, city, country, latitude, longitude
  airlines: code, name, callsign, country
  flights:  source, target, airline

Examples:
  airgraph import data/airports.dat data/airlines.dat data/routes.dat`,
	Args: cobra.ExactArgs(3),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	importer := ingest.NewImporter(store.New(db))
	summary, err := importer.ImportAll(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	fmt.Printf("Import complete:\n")
	fmt.Printf("  Airports: %s\n", humanize.Comma(int64(summary.Airports)))
	fmt.Printf("  Airlines: %s\n", humanize.Comma(int64(summary.Airlines)))
	fmt.Printf("  Flights:  %s\n", humanize.Comma(int64(summary.Flights)))
	fmt.Printf("  Skipped:  %s\n", humanize.Comma(int64(summary.Skipped)))

	return nil
}
