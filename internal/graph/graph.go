// Package graph provides an in-memory directed graph of airports and flight routes.
package graph

import (
	"sort"
	"strings"

	"github.com/lmcosta-dev/airgraph/internal/geo"
)

// Airport is the payload carried by a node. The graph indexes and compares
// nodes solely by IATA code; the remaining fields are display attributes.
type Airport struct {
	Code     string
	Name     string
	City     string
	Country  string
	Location geo.Coordinates
}

// Airline identifies a carrier by ICAO code.
type Airline struct {
	Code     string
	Name     string
	Callsign string
	Country  string
}

// Node is a vertex in the route graph. FlightsTo and FlightsFrom are
// aggregate counters filled during loading; queries treat them as read-only.
// InDegree and OutDegree are filled by ComputeDegrees.
type Node struct {
	Airport
	Adj []*Edge

	FlightsTo   int
	FlightsFrom int
	InDegree    int
	OutDegree   int
}

// Edge is a directed route to another airport. Multiple airlines sharing a
// route collapse onto one edge; the airline set is deduplicated by code.
// Flights is the total number of individual flights recorded on the route.
type Edge struct {
	To       *Node
	Distance float64
	Flights  int

	airlines map[string]Airline
	flights  map[string]int
}

// AddAirline records a carrier on this route. Re-adding the same code is a
// no-op.
func (e *Edge) AddAirline(a Airline) {
	if e.airlines == nil {
		e.airlines = make(map[string]Airline)
	}
	e.airlines[a.Code] = a
}

// RecordFlights merges the carrier onto the route and adds count flights to
// its tally and the route total.
func (e *Edge) RecordFlights(a Airline, count int) {
	e.AddAirline(a)
	if e.flights == nil {
		e.flights = make(map[string]int)
	}
	e.flights[a.Code] += count
	e.Flights += count
}

// FlightsBy returns the number of flights the carrier operates on this route.
func (e *Edge) FlightsBy(airlineCode string) int { return e.flights[airlineCode] }

// Airlines returns the carriers operating this route, ordered by code.
func (e *Edge) Airlines() []Airline {
	out := make([]Airline, 0, len(e.airlines))
	for _, a := range e.airlines {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// AirlineCount returns the number of distinct carriers on this route.
func (e *Edge) AirlineCount() int { return len(e.airlines) }

// Graph holds the airport nodes in insertion order with a code index for
// lookup. It is populated once during loading and treated as immutable by
// all queries; traversal state lives in per-query maps, never on the nodes.
type Graph struct {
	nodes  []*Node
	index  map[string]*Node
	routes int
}

func New() *Graph {
	return &Graph{index: make(map[string]*Node)}
}

func NewWithCapacity(nodeCapacity int) *Graph {
	return &Graph{
		nodes: make([]*Node, 0, nodeCapacity),
		index: make(map[string]*Node, nodeCapacity),
	}
}

// AddAirport inserts a node for the airport and reports whether it was
// inserted. An airport with a duplicate code is rejected.
func (g *Graph) AddAirport(a Airport) bool {
	if _, exists := g.index[a.Code]; exists {
		return false
	}
	n := &Node{Airport: a}
	g.nodes = append(g.nodes, n)
	g.index[a.Code] = n
	return true
}

// AddRoute adds a directed route between two airports and returns the edge.
// If a route already exists for the ordered pair, the existing edge is
// returned so the caller can merge airlines onto it. Reports false if either
// endpoint is missing.
func (g *Graph) AddRoute(from, to string, distance float64) (*Edge, bool) {
	src := g.index[from]
	dst := g.index[to]
	if src == nil || dst == nil {
		return nil, false
	}

	for _, e := range src.Adj {
		if e.To == dst {
			return e, true
		}
	}

	e := &Edge{To: dst, Distance: distance}
	src.Adj = append(src.Adj, e)
	g.routes++
	return e, true
}

// Node returns the node with the given code, or nil.
func (g *Graph) Node(code string) *Node {
	return g.index[code]
}

// FindByCode looks up an airport case-insensitively.
func (g *Graph) FindByCode(code string) *Node {
	if n := g.index[code]; n != nil {
		return n
	}
	if n := g.index[strings.ToUpper(code)]; n != nil {
		return n
	}
	for _, n := range g.nodes {
		if strings.EqualFold(n.Code, code) {
			return n
		}
	}
	return nil
}

// Nodes returns all nodes in insertion order. The slice is shared; callers
// must not mutate it.
func (g *Graph) Nodes() []*Node { return g.nodes }

func (g *Graph) NodeCount() int { return len(g.nodes) }

// RouteCount returns the number of directed edges.
func (g *Graph) RouteCount() int { return g.routes }

// FlightCount returns the total number of individual flights, summed from
// the per-node arrival counters.
func (g *Graph) FlightCount() int {
	total := 0
	for _, n := range g.nodes {
		total += n.FlightsTo
	}
	return total
}

// RouteBetween returns the edge from one node to another, or nil if no
// direct route exists.
func (g *Graph) RouteBetween(from, to *Node) *Edge {
	if from == nil || to == nil {
		return nil
	}
	for _, e := range from.Adj {
		if e.To == to {
			return e
		}
	}
	return nil
}

// AirlinesBetween returns the carriers operating the direct route between
// two airports. A route with no merged airlines yields an empty set, and so
// does an absent route.
func (g *Graph) AirlinesBetween(from, to *Node) []Airline {
	e := g.RouteBetween(from, to)
	if e == nil {
		return nil
	}
	return e.Airlines()
}

// DistanceBetween returns the direct-route distance in kilometers, or 0 if
// no direct route exists.
func (g *Graph) DistanceBetween(from, to *Node) float64 {
	e := g.RouteBetween(from, to)
	if e == nil {
		return 0
	}
	return e.Distance
}

// ComputeDegrees recomputes every node's in-degree and out-degree from the
// current edge set. Must run once after bulk route insertion, before any
// query that reads degrees.
func (g *Graph) ComputeDegrees() {
	for _, n := range g.nodes {
		n.InDegree = 0
		n.OutDegree = len(n.Adj)
	}
	for _, n := range g.nodes {
		for _, e := range n.Adj {
			e.To.InDegree++
		}
	}
}
