package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reachStops int
	reachBy    string
	reachList  bool
)

var reachCmd = &cobra.Command{
	Use:   "reach <code>",
	Short: "Show what is reachable from an airport",
	Long: `Show how many airports, cities or countries are reachable from an
airport within a layover budget, or list everything reachable with --list.

Examples:
  airgraph reach JFK
  airgraph reach JFK --stops 2 --by cities
  airgraph reach JFK --by countries --list`,
	Args: cobra.ExactArgs(1),
	RunE: runReach,
}

func init() {
	rootCmd.AddCommand(reachCmd)

	reachCmd.Flags().IntVarP(&reachStops, "stops", "s", 1, "maximum layovers")
	reachCmd.Flags().StringVar(&reachBy, "by", "airports", "count airports, cities or countries")
	reachCmd.Flags().BoolVar(&reachList, "list", false, "list everything reachable, ignoring --stops")
}

func runReach(cmd *cobra.Command, args []string) error {
	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	start := g.FindByCode(args[0])
	if start == nil {
		return fmt.Errorf("unknown airport %q", args[0])
	}

	if reachList {
		switch reachBy {
		case "airports":
			nodes := g.ReachableAirports(start)
			fmt.Printf("%d airports reachable from %s:\n", len(nodes), start.Code)
			for _, n := range nodes {
				fmt.Printf("  %s  %s (%s, %s)\n", n.Code, n.Name, n.City, n.Country)
			}
		case "cities":
			cities := g.ReachableCities(start)
			fmt.Printf("%d cities reachable from %s:\n", len(cities), start.Code)
			for _, c := range cities {
				fmt.Printf("  %s\n", c)
			}
		case "countries":
			countries := g.ReachableCountries(start)
			fmt.Printf("%d countries reachable from %s:\n", len(countries), start.Code)
			for _, c := range countries {
				fmt.Printf("  %s\n", c)
			}
		default:
			return fmt.Errorf("invalid --by value %q: must be airports, cities or countries", reachBy)
		}
		return nil
	}

	var count int
	switch reachBy {
	case "airports":
		count = g.ReachableAirportsInStops(start, reachStops)
	case "cities":
		count = g.ReachableCitiesInStops(start, reachStops)
	case "countries":
		count = g.ReachableCountriesInStops(start, reachStops)
	default:
		return fmt.Errorf("invalid --by value %q: must be airports, cities or countries", reachBy)
	}

	fmt.Printf("%d %s reachable from %s within %d layovers\n", count, reachBy, start.Code, reachStops)
	return nil
}
