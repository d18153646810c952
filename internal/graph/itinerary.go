package graph

import "sort"

// Itinerary is a concrete trip candidate: the ordered airports flown
// through, the total route distance, and the carriers able to operate every
// leg (empty unless airline filtering was requested).
type Itinerary struct {
	Stops    []*Node
	Distance float64
	Airlines []Airline
}

// Layovers returns the number of intermediate stops.
func (it Itinerary) Layovers() int {
	if len(it.Stops) < 2 {
		return 0
	}
	return len(it.Stops) - 2
}

// PlanOptions controls itinerary planning. Via lists waypoints the trip must
// pass through in order. SameAirline keeps only itineraries where at least
// one carrier operates every leg. MaxCompositions caps waypoint composition;
// zero means DefaultMaxCompositions.
type PlanOptions struct {
	Via             []*Node
	SameAirline     bool
	MaxCompositions int
}

// PlanItineraries builds trip candidates between every source and target
// pairing. Sources and targets are sets so a caller can plan from all
// airports serving a city. Only the fewest-layover itineraries across all
// pairings survive; within that layover count results are ordered by total
// distance, shortest first. An empty result means no pairing is connected
// (or none passed the airline filter).
func (g *Graph) PlanItineraries(sources, targets []*Node, opts PlanOptions) []Itinerary {
	var (
		itineraries []Itinerary
		minLayovers = -1
	)

	for _, src := range sources {
		for _, dst := range targets {
			if src == nil || dst == nil {
				continue
			}
			paths := g.ComposeVia(src, opts.Via, dst, opts.MaxCompositions)
			for _, path := range paths {
				it := Itinerary{Stops: path, Distance: g.PathDistance(path)}
				if opts.SameAirline {
					it.Airlines = g.SharedAirlines(path)
					if len(it.Airlines) == 0 {
						continue
					}
				}

				layovers := it.Layovers()
				switch {
				case minLayovers < 0 || layovers < minLayovers:
					minLayovers = layovers
					itineraries = itineraries[:0]
					itineraries = append(itineraries, it)
				case layovers == minLayovers:
					itineraries = append(itineraries, it)
				}
			}
		}
	}

	sort.SliceStable(itineraries, func(i, j int) bool {
		return itineraries[i].Distance < itineraries[j].Distance
	})
	return itineraries
}
