package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmcosta-dev/airgraph/internal/geo"
	"github.com/lmcosta-dev/airgraph/internal/graph"
)

var searchBy string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search airports by name, city or country",
	Long: `Search airports by a case-insensitive substring of their name,
city or country. Spaces in the query are ignored.

Examples:
  airgraph search kennedy
  airgraph search "new york" --by city
  airgraph search portugal --by country`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var nearestCmd = &cobra.Command{
	Use:   "nearest <latitude> <longitude>",
	Short: "Find the airport closest to a coordinate",
	Long: `Find the airport with the smallest great-circle distance to the
given coordinate. All airports tied for the minimum are listed.

Examples:
  airgraph nearest 40.64 -73.78`,
	Args: cobra.ExactArgs(2),
	RunE: runNearest,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(nearestCmd)

	searchCmd.Flags().StringVar(&searchBy, "by", "name", "search by name, city or country")
}

func runSearch(cmd *cobra.Command, args []string) error {
	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	var results []*graph.Node
	switch searchBy {
	case "name":
		results = g.SearchByName(args[0])
	case "city":
		results = g.SearchByCity(args[0])
	case "country":
		results = g.SearchByCountry(args[0])
	default:
		return fmt.Errorf("invalid --by value %q: must be name, city or country", searchBy)
	}

	if len(results) == 0 {
		fmt.Printf("No airports match %q\n", args[0])
		return nil
	}

	fmt.Printf("%d airports match %q:\n", len(results), args[0])
	printAirports(results)
	return nil
}

func runNearest(cmd *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q", args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q", args[1])
	}

	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	point := geo.Coordinates{Lat: lat, Lon: lon}
	results := g.Nearest(point)
	if len(results) == 0 {
		fmt.Println("No airports loaded")
		return nil
	}

	fmt.Printf("Nearest to (%.4f, %.4f):\n", lat, lon)
	for _, n := range results {
		fmt.Printf("  %s  %s (%s, %s)  %.1f km\n",
			n.Code, n.Name, n.City, n.Country, point.DistanceTo(n.Location))
	}
	return nil
}

func printAirports(nodes []*graph.Node) {
	for _, n := range nodes {
		fmt.Printf("  %s  %s (%s, %s)\n", n.Code, n.Name, n.City, n.Country)
	}
}
