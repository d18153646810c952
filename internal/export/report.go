// Package export renders a text report of the network analysis.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lmcosta-dev/airgraph/internal/graph"
)

// Options controls which sections the report includes.
type Options struct {
	TopK        int  // airports in the traffic ranking, 0 disables
	Essential   bool // include the essential airports section
	Diameter    bool // include the diameter section
	MaxDiameter int  // longest paths listed in the diameter section
}

// DefaultOptions enables every section with a ten-entry ranking.
var DefaultOptions = Options{
	TopK:        10,
	Essential:   true,
	Diameter:    true,
	MaxDiameter: 5,
}

// WriteReport renders the analysis summary for the graph to w.
func WriteReport(w io.Writer, g *graph.Graph, opts Options) error {
	var b strings.Builder

	b.WriteString("AIRGRAPH NETWORK REPORT\n")
	b.WriteString("=======================\n\n")

	fmt.Fprintf(&b, "Airports: %s\n", humanize.Comma(int64(g.NodeCount())))
	fmt.Fprintf(&b, "Routes:   %s\n", humanize.Comma(int64(g.RouteCount())))
	fmt.Fprintf(&b, "Flights:  %s\n", humanize.Comma(int64(g.FlightCount())))
	b.WriteString("\n")

	if opts.TopK > 0 {
		fmt.Fprintf(&b, "Busiest airports (top %d, ties included)\n", opts.TopK)
		b.WriteString("----------------------------------------\n")
		for i, r := range g.TopTraffic(opts.TopK) {
			fmt.Fprintf(&b, "%3d. %s  %s (%s, %s)  %s flights\n",
				i+1, r.Node.Code, r.Node.Name, r.Node.City, r.Node.Country,
				humanize.Comma(int64(r.Flights)))
		}
		b.WriteString("\n")
	}

	if opts.Essential {
		essential := g.EssentialAirports()
		codes := make([]string, 0, len(essential))
		for code := range essential {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		fmt.Fprintf(&b, "Essential airports: %d\n", len(codes))
		b.WriteString("----------------------------------------\n")
		for _, code := range codes {
			n := g.Node(code)
			fmt.Fprintf(&b, "  %s  %s (%s, %s)\n", n.Code, n.Name, n.City, n.Country)
		}
		b.WriteString("\n")
	}

	if opts.Diameter {
		diameter, paths := g.Diameter()
		fmt.Fprintf(&b, "Network diameter: %d flights (%d longest trips)\n", diameter, len(paths))
		b.WriteString("----------------------------------------\n")
		limit := opts.MaxDiameter
		if limit <= 0 || limit > len(paths) {
			limit = len(paths)
		}
		for _, p := range paths[:limit] {
			codes := make([]string, len(p))
			for i, n := range p {
				codes[i] = n.Code
			}
			fmt.Fprintf(&b, "  %s\n", strings.Join(codes, " -> "))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
