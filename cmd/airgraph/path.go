package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmcosta-dev/airgraph/internal/graph"
)

var (
	pathVia         string
	pathSameAirline bool
	outputFormat    string
)

var pathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Plan itineraries between two airports or cities",
	Long: `Plan itineraries between two airports or cities.

Endpoints are airport codes; anything that is not a known code is treated
as a city name, planning from every airport serving it. Results keep only
the itineraries with the fewest layovers, ordered by total distance.

Examples:
  airgraph path JFK LAX
  airgraph path "New York" "Los Angeles"
  airgraph path JFK SYD --via LAX
  airgraph path JFK LAX --same-airline --format json`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)

	pathCmd.Flags().StringVar(&pathVia, "via", "", "comma-separated airport codes the trip must pass through, in order")
	pathCmd.Flags().BoolVar(&pathSameAirline, "same-airline", false, "keep only itineraries one carrier can operate end to end")
	pathCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format: text, json")
}

type itineraryOutput struct {
	Stops    []string `json:"stops"`
	Layovers int      `json:"layovers"`
	Distance float64  `json:"distance_km"`
	Airlines []string `json:"airlines,omitempty"`
}

type pathOutput struct {
	Found       bool              `json:"found"`
	From        string            `json:"from"`
	To          string            `json:"to"`
	Via         []string          `json:"via,omitempty"`
	SameAirline bool              `json:"same_airline"`
	Itineraries []itineraryOutput `json:"itineraries,omitempty"`
	DurationMs  int64             `json:"duration_ms"`
}

func runPath(cmd *cobra.Command, args []string) error {
	from, to := args[0], args[1]

	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	sources := resolveEndpoint(g, from)
	if len(sources) == 0 {
		return fmt.Errorf("no airport or city matches %q", from)
	}
	targets := resolveEndpoint(g, to)
	if len(targets) == 0 {
		return fmt.Errorf("no airport or city matches %q", to)
	}

	opts := graph.PlanOptions{SameAirline: pathSameAirline}
	var viaCodes []string
	if pathVia != "" {
		for _, code := range strings.Split(pathVia, ",") {
			code = strings.TrimSpace(code)
			n := g.FindByCode(code)
			if n == nil {
				return fmt.Errorf("unknown waypoint %q", code)
			}
			opts.Via = append(opts.Via, n)
			viaCodes = append(viaCodes, n.Code)
		}
	}

	start := time.Now()
	itineraries := g.PlanItineraries(sources, targets, opts)
	duration := time.Since(start)

	out := pathOutput{
		Found:       len(itineraries) > 0,
		From:        from,
		To:          to,
		Via:         viaCodes,
		SameAirline: pathSameAirline,
		DurationMs:  duration.Milliseconds(),
	}
	for _, it := range itineraries {
		stops := make([]string, len(it.Stops))
		for i, n := range it.Stops {
			stops[i] = n.Code
		}
		var airlines []string
		for _, a := range it.Airlines {
			airlines = append(airlines, a.Code)
		}
		out.Itineraries = append(out.Itineraries, itineraryOutput{
			Stops:    stops,
			Layovers: it.Layovers(),
			Distance: it.Distance,
			Airlines: airlines,
		})
	}

	switch outputFormat {
	case "json":
		return outputJSON(out)
	default:
		return outputText(out)
	}
}

// resolveEndpoint maps a user-supplied endpoint to candidate airports:
// an exact code match first, otherwise every airport in the named city.
func resolveEndpoint(g *graph.Graph, arg string) []*graph.Node {
	if n := g.FindByCode(arg); n != nil {
		return []*graph.Node{n}
	}
	return g.AirportsInCity(arg)
}

func outputJSON(out pathOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func outputText(out pathOutput) error {
	if !out.Found {
		fmt.Printf("No itinerary found from %q to %q\n", out.From, out.To)
		return nil
	}

	fmt.Printf("Found %d itineraries (%d layovers):\n", len(out.Itineraries), out.Itineraries[0].Layovers)
	for _, it := range out.Itineraries {
		fmt.Printf("  %s  %.0f km", strings.Join(it.Stops, " -> "), it.Distance)
		if len(it.Airlines) > 0 {
			fmt.Printf("  [%s]", strings.Join(it.Airlines, ", "))
		}
		fmt.Println()
	}
	fmt.Printf("\nPlanned in %dms\n", out.DurationMs)

	return nil
}
