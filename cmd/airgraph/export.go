package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmcosta-dev/airgraph/internal/export"
)

var (
	exportTopK  int
	exportPaths int
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a text report of the network analysis",
	Long: `Write a text report summarizing the route network: totals, the
busiest airports, essential airports and the network diameter.

Writes to stdout when no file is given.

Examples:
  airgraph export
  airgraph export report.txt --top 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntVar(&exportTopK, "top", 10, "airports in the traffic ranking")
	exportCmd.Flags().IntVar(&exportPaths, "paths", 5, "longest trips listed in the diameter section")
}

func runExport(cmd *cobra.Command, args []string) error {
	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	opts := export.DefaultOptions
	opts.TopK = exportTopK
	opts.MaxDiameter = exportPaths

	out := os.Stdout
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteReport(out, g, opts); err != nil {
		return err
	}

	if len(args) == 1 {
		fmt.Printf("Report written to %s\n", args[0])
	}
	return nil
}
