package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var analyzeTopK int

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the route network",
	Long: `Run network analysis over the route graph.

Subcommands:
  diameter   longest shortest trip in the network
  essential  airports whose closure would disconnect travellers
  top        busiest airports by total flights
  cities     flights departing per city
  airlines   flights operated per airline`,
}

var diameterCmd = &cobra.Command{
	Use:   "diameter",
	Short: "Show the longest shortest trip in the network",
	RunE:  runDiameter,
}

var essentialCmd = &cobra.Command{
	Use:   "essential",
	Short: "List airports whose closure would disconnect travellers",
	RunE:  runEssential,
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List the busiest airports by total flights",
	RunE:  runTop,
}

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Show flights departing per city",
	RunE:  runCities,
}

var airlinesCmd = &cobra.Command{
	Use:   "airlines",
	Short: "Show flights operated per airline",
	RunE:  runAirlines,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.AddCommand(diameterCmd, essentialCmd, topCmd, citiesCmd, airlinesCmd)

	topCmd.Flags().IntVarP(&analyzeTopK, "count", "k", 10, "ranking depth, ties included")
}

func runDiameter(cmd *cobra.Command, args []string) error {
	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	diameter, paths := g.Diameter()
	fmt.Printf("Network diameter: %d flights\n\n", diameter)
	fmt.Printf("Longest trips (%d):\n", len(paths))
	for _, p := range paths {
		codes := make([]string, len(p))
		for i, n := range p {
			codes[i] = n.Code
		}
		fmt.Printf("  %s\n", strings.Join(codes, " -> "))
	}

	return nil
}

func runEssential(cmd *cobra.Command, args []string) error {
	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	essential := g.EssentialAirports()
	codes := make([]string, 0, len(essential))
	for code := range essential {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fmt.Printf("Essential airports: %d\n", len(codes))
	for _, code := range codes {
		n := g.Node(code)
		fmt.Printf("  %s  %s (%s, %s)\n", n.Code, n.Name, n.City, n.Country)
	}

	return nil
}

func runTop(cmd *cobra.Command, args []string) error {
	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	ranks := g.TopTraffic(analyzeTopK)
	fmt.Printf("Busiest airports (top %d, ties included):\n", analyzeTopK)
	for i, r := range ranks {
		fmt.Printf("%3d. %s  %s (%s, %s)  %s flights\n",
			i+1, r.Node.Code, r.Node.Name, r.Node.City, r.Node.Country,
			humanize.Comma(int64(r.Flights)))
	}

	return nil
}

func runCities(cmd *cobra.Command, args []string) error {
	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	printCountTable(g.FlightsPerCity())
	return nil
}

func runAirlines(cmd *cobra.Command, args []string) error {
	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	printCountTable(g.FlightsPerAirline())
	return nil
}

// printCountTable prints a name-to-count map ordered by count descending,
// then name, so equal counts have a stable order.
func printCountTable(counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		fmt.Printf("  %s  %s flights\n", name, humanize.Comma(int64(counts[name])))
	}
}
