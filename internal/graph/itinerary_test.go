package graph

import (
	"testing"
)

// buildPlannerGraph wires two ways from NYC to LAX:
//
//	JFK -> ORD -> LAX (AAL on both legs, 2700 km)
//	EWR -> DEN -> LAX (UAL then DAL, 2600 km)
//	JFK -> LAX direct  (DAL, 3980 km)
func buildPlannerGraph(t *testing.T) *Graph {
	t.Helper()

	g := New()
	airports := []Airport{
		testAirport("JFK", "New York", "United States"),
		testAirport("EWR", "New York", "United States"),
		testAirport("ORD", "Chicago", "United States"),
		testAirport("DEN", "Denver", "United States"),
		testAirport("LAX", "Los Angeles", "United States"),
	}
	for _, a := range airports {
		g.AddAirport(a)
	}

	aal := Airline{Code: "AAL", Name: "American Airlines"}
	ual := Airline{Code: "UAL", Name: "United Airlines"}
	dal := Airline{Code: "DAL", Name: "Delta Air Lines"}

	add := func(from, to string, distance float64, a Airline) {
		e, ok := g.AddRoute(from, to, distance)
		if !ok {
			t.Fatalf("AddRoute(%s, %s) failed", from, to)
		}
		e.AddAirline(a)
	}
	add("JFK", "ORD", 1200, aal)
	add("ORD", "LAX", 1500, aal)
	add("EWR", "DEN", 1600, ual)
	add("DEN", "LAX", 1000, dal)
	add("JFK", "LAX", 3980, dal)
	return g
}

func TestPlanItinerariesMinLayovers(t *testing.T) {
	g := buildPlannerGraph(t)

	sources := g.AirportsInCity("New York")
	targets := []*Node{g.Node("LAX")}

	got := g.PlanItineraries(sources, targets, PlanOptions{})
	if len(got) != 1 {
		t.Fatalf("got %d itineraries, want 1 (direct flight beats one-stops)", len(got))
	}
	if !samePath(got[0].Stops, []string{"JFK", "LAX"}) {
		t.Errorf("stops = %v, want [JFK LAX]", pathCodes(got[0].Stops))
	}
	if got[0].Layovers() != 0 {
		t.Errorf("layovers = %d, want 0", got[0].Layovers())
	}
}

func TestPlanItinerariesDistanceOrder(t *testing.T) {
	g := buildPlannerGraph(t)

	// Without the direct route every itinerary has one layover and sorting
	// falls to total distance.
	g2 := New()
	for _, n := range g.Nodes() {
		g2.AddAirport(n.Airport)
	}
	for _, n := range g.Nodes() {
		for _, e := range n.Adj {
			if n.Code == "JFK" && e.To.Code == "LAX" {
				continue
			}
			edge, _ := g2.AddRoute(n.Code, e.To.Code, e.Distance)
			for _, a := range e.Airlines() {
				edge.AddAirline(a)
			}
		}
	}

	got := g2.PlanItineraries(g2.AirportsInCity("New York"), []*Node{g2.Node("LAX")}, PlanOptions{})
	if len(got) != 2 {
		t.Fatalf("got %d itineraries, want 2", len(got))
	}
	if got[0].Distance != 2600 || got[1].Distance != 2700 {
		t.Errorf("distances = [%v %v], want [2600 2700]", got[0].Distance, got[1].Distance)
	}
	if !samePath(got[0].Stops, []string{"EWR", "DEN", "LAX"}) {
		t.Errorf("first itinerary = %v, want [EWR DEN LAX]", pathCodes(got[0].Stops))
	}
}

func TestPlanItinerariesSameAirline(t *testing.T) {
	g := buildPlannerGraph(t)

	// Remove the airline filter's easy win: only consider one-stop routes.
	sources := []*Node{g.Node("JFK"), g.Node("EWR")}
	targets := []*Node{g.Node("LAX")}

	got := g.PlanItineraries(sources, targets, PlanOptions{SameAirline: true})
	// The JFK direct flight (DAL) survives as the fewest-layover option.
	if len(got) != 1 {
		t.Fatalf("got %d itineraries, want 1", len(got))
	}
	if len(got[0].Airlines) != 1 || got[0].Airlines[0].Code != "DAL" {
		t.Errorf("airlines = %v, want [DAL]", got[0].Airlines)
	}
}

func TestPlanItinerariesSameAirlineFiltersMixedLegs(t *testing.T) {
	g := buildPlannerGraph(t)

	// EWR -> DEN -> LAX mixes UAL and DAL, so no single carrier covers it.
	got := g.PlanItineraries([]*Node{g.Node("EWR")}, []*Node{g.Node("LAX")}, PlanOptions{SameAirline: true})
	if len(got) != 0 {
		t.Errorf("got %d itineraries, want 0 (no shared carrier)", len(got))
	}
}

func TestPlanItinerariesVia(t *testing.T) {
	g := buildPlannerGraph(t)

	got := g.PlanItineraries([]*Node{g.Node("JFK")}, []*Node{g.Node("LAX")},
		PlanOptions{Via: []*Node{g.Node("ORD")}})
	if len(got) != 1 {
		t.Fatalf("got %d itineraries, want 1", len(got))
	}
	if !samePath(got[0].Stops, []string{"JFK", "ORD", "LAX"}) {
		t.Errorf("stops = %v, want [JFK ORD LAX]", pathCodes(got[0].Stops))
	}
	if got[0].Distance != 2700 {
		t.Errorf("distance = %v, want 2700", got[0].Distance)
	}
}

func TestPlanItinerariesDisconnected(t *testing.T) {
	g := buildPlannerGraph(t)
	g.AddAirport(testAirport("LIS", "Lisbon", "Portugal"))

	got := g.PlanItineraries([]*Node{g.Node("LAX")}, []*Node{g.Node("LIS")}, PlanOptions{})
	if len(got) != 0 {
		t.Errorf("got %d itineraries for unreachable target, want 0", len(got))
	}
}
