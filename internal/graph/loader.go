package graph

import (
	"fmt"

	"github.com/lmcosta-dev/airgraph/internal/geo"
	"github.com/lmcosta-dev/airgraph/internal/store"
)

// Loader builds a Graph from the route store.
type Loader struct {
	store *store.Store
}

func NewLoader(s *store.Store) *Loader {
	return &Loader{store: s}
}

// Load reads every airport and merged route into a graph, records
// per-airline flight tallies on the edges, derives the per-airport flight
// counters, and computes degrees.
func (l *Loader) Load() (*Graph, error) {
	data, err := l.store.GetGraphData()
	if err != nil {
		return nil, fmt.Errorf("loading graph data: %w", err)
	}

	g := NewWithCapacity(len(data.Airports))

	// Add all airports first (keeps isolated airports in the graph)
	for _, a := range data.Airports {
		g.AddAirport(Airport{
			Code:     a.Code,
			Name:     a.Name,
			City:     a.City,
			Country:  a.Country,
			Location: geo.Coordinates{Lat: a.Latitude, Lon: a.Longitude},
		})
	}

	for _, r := range data.Routes {
		e, ok := g.AddRoute(r.Origin, r.Destination, r.Distance)
		if !ok {
			continue
		}
		for _, ra := range r.Airlines {
			e.RecordFlights(Airline{
				Code:     ra.Code,
				Name:     ra.Name,
				Callsign: ra.Callsign,
				Country:  ra.Country,
			}, ra.Flights)
		}
	}

	for _, n := range g.Nodes() {
		for _, e := range n.Adj {
			n.FlightsFrom += e.Flights
			e.To.FlightsTo += e.Flights
		}
	}

	g.ComputeDegrees()
	return g, nil
}
