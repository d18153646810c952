package graph

import "sort"

// ReachableInStops counts the distinct attr values among airports reachable
// from start with at most layOvers intermediate stops. The walk dequeues in
// level order and every node sitting at depth <= layOvers contributes the
// destinations of all its outgoing edges, already-discovered or not.
// layOvers = 0 therefore counts the direct destinations, and the start
// airport itself counts when a cycle leads back to it within the budget.
// A nil start or a negative layOvers yields 0.
func (g *Graph) ReachableInStops(start *Node, layOvers int, attr func(*Node) string) int {
	if start == nil || layOvers < 0 {
		return 0
	}

	visited := make(map[*Node]bool, len(g.nodes))
	seen := make(map[string]struct{})
	queue := newNodeQueue(64)

	visited[start] = true
	queue.push(start, 0)

	for queue.len() > 0 {
		item, _ := queue.pop()
		if item.depth > layOvers {
			break
		}
		for _, e := range item.node.Adj {
			seen[attr(e.To)] = struct{}{}
			if !visited[e.To] {
				visited[e.To] = true
				queue.push(e.To, item.depth+1)
			}
		}
	}

	return len(seen)
}

// ReachableAirportsInStops counts distinct airports reachable with at most
// layOvers stops.
func (g *Graph) ReachableAirportsInStops(start *Node, layOvers int) int {
	return g.ReachableInStops(start, layOvers, func(n *Node) string { return n.Code })
}

// ReachableCitiesInStops counts distinct city+country pairs reachable with at
// most layOvers stops.
func (g *Graph) ReachableCitiesInStops(start *Node, layOvers int) int {
	return g.ReachableInStops(start, layOvers, cityKey)
}

// ReachableCountriesInStops counts distinct countries reachable with at most
// layOvers stops.
func (g *Graph) ReachableCountriesInStops(start *Node, layOvers int) int {
	return g.ReachableInStops(start, layOvers, func(n *Node) string { return n.Country })
}

// reachableDestinations walks depth-first from start and returns every node
// reachable through at least one flight. The start node is not pre-marked,
// so it appears in the result only when a cycle leads back to it.
func (g *Graph) reachableDestinations(start *Node) []*Node {
	if start == nil {
		return nil
	}

	visited := make(map[*Node]bool, len(g.nodes))
	var out []*Node

	var walk func(n *Node)
	walk = func(n *Node) {
		for _, e := range n.Adj {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			out = append(out, e.To)
			walk(e.To)
		}
	}
	walk(start)

	return out
}

// ReachableAirports returns every airport reachable from start through any
// number of flights, in discovery order.
func (g *Graph) ReachableAirports(start *Node) []*Node {
	return g.reachableDestinations(start)
}

// ReachableCities returns the distinct city+country pairs reachable from
// start, sorted.
func (g *Graph) ReachableCities(start *Node) []string {
	return distinctAttr(g.reachableDestinations(start), cityKey)
}

// ReachableCountries returns the distinct countries reachable from start,
// sorted.
func (g *Graph) ReachableCountries(start *Node) []string {
	return distinctAttr(g.reachableDestinations(start), func(n *Node) string { return n.Country })
}

// Diameter returns the longest shortest-path hop count between any ordered
// pair of connected airports, together with every path realizing it. The
// route direction matters. An edgeless graph has diameter 0 and one trivial
// path per airport.
func (g *Graph) Diameter() (int, [][]*Node) {
	diameter := -1
	var longest [][]*Node

	for _, src := range g.nodes {
		parent := make(map[*Node]*Node, len(g.nodes))
		maxDepth := 0
		var farthest []*Node

		g.BreadthFirst(src, func(n *Node, depth int) bool {
			if depth > maxDepth {
				maxDepth = depth
				farthest = farthest[:0]
			}
			if depth == maxDepth {
				farthest = append(farthest, n)
			}
			for _, e := range n.Adj {
				if _, seen := parent[e.To]; !seen && e.To != src {
					parent[e.To] = n
				}
			}
			return true
		})

		if maxDepth > diameter {
			diameter = maxDepth
			longest = longest[:0]
		}
		if maxDepth == diameter {
			for _, end := range farthest {
				longest = append(longest, rebuildPath(src, end, parent))
			}
		}
	}

	if diameter < 0 {
		return 0, nil
	}
	return diameter, longest
}

func rebuildPath(src, end *Node, parent map[*Node]*Node) []*Node {
	var reversed []*Node
	for n := end; n != nil && n != src; n = parent[n] {
		reversed = append(reversed, n)
	}
	path := make([]*Node, 0, len(reversed)+1)
	path = append(path, src)
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

// EssentialAirports returns the codes of airports whose removal would
// disconnect part of the network, found by a low-link depth-first search
// over every component. The very first airport visited is the search root:
// it is essential when it has two or more search children, any other airport
// is essential when some child's low-link does not reach above its own
// discovery order. Only edges back to airports still on the search stack
// lower the low-link; cross edges to finished airports do not.
func (g *Graph) EssentialAirports() map[string]struct{} {
	essential := make(map[string]struct{})
	num := make(map[*Node]int, len(g.nodes))
	low := make(map[*Node]int, len(g.nodes))
	onStack := make(map[*Node]bool, len(g.nodes))
	counter := 0

	var walk func(v *Node)
	walk = func(v *Node) {
		order := counter
		counter++
		num[v] = order
		low[v] = order
		onStack[v] = true

		children := 0
		for _, e := range v.Adj {
			w := e.To
			if _, seen := num[w]; !seen {
				children++
				walk(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
				if order == 0 {
					if children > 1 {
						essential[v.Code] = struct{}{}
					}
				} else if low[w] >= order {
					essential[v.Code] = struct{}{}
				}
			} else if onStack[w] && num[w] < low[v] {
				low[v] = num[w]
			}
		}

		onStack[v] = false
	}

	for _, n := range g.nodes {
		if _, seen := num[n]; !seen {
			walk(n)
		}
	}

	return essential
}

// TrafficRank pairs an airport with its combined arrival and departure
// flight count.
type TrafficRank struct {
	Node    *Node
	Flights int
}

// TopTraffic ranks airports by FlightsTo+FlightsFrom, busiest first, and
// returns every airport whose count is among the k highest distinct counts.
// Ties therefore extend the result past k entries. k <= 0 yields nil.
func (g *Graph) TopTraffic(k int) []TrafficRank {
	if k <= 0 || len(g.nodes) == 0 {
		return nil
	}

	ranked := make([]TrafficRank, 0, len(g.nodes))
	for _, n := range g.nodes {
		ranked = append(ranked, TrafficRank{Node: n, Flights: n.FlightsTo + n.FlightsFrom})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Flights > ranked[j].Flights })

	distinct := 0
	for i := range ranked {
		if i == 0 || ranked[i].Flights != ranked[i-1].Flights {
			distinct++
		}
		if distinct > k {
			return ranked[:i]
		}
	}
	return ranked
}

// FlightsPerCity aggregates departing flights by city+country, walking every
// component depth-first.
func (g *Graph) FlightsPerCity() map[string]int {
	out := make(map[string]int)
	g.DepthFirstAll(func(n *Node) bool {
		out[cityKey(n)] += n.FlightsFrom
		return true
	})
	return out
}

// FlightsPerAirline aggregates flights by operating carrier code across
// every route.
func (g *Graph) FlightsPerAirline() map[string]int {
	out := make(map[string]int)
	for _, n := range g.nodes {
		for _, e := range n.Adj {
			for code, count := range e.flights {
				out[code] += count
			}
		}
	}
	return out
}

// AirlinesOutOf returns the distinct carriers departing from the airport,
// ordered by code.
func (g *Graph) AirlinesOutOf(n *Node) []Airline {
	if n == nil {
		return nil
	}
	byCode := make(map[string]Airline)
	for _, e := range n.Adj {
		for code, a := range e.airlines {
			byCode[code] = a
		}
	}
	out := make([]Airline, 0, len(byCode))
	for _, a := range byCode {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// CountriesFromAirport returns the distinct countries served by direct
// flights out of the airport, sorted.
func (g *Graph) CountriesFromAirport(n *Node) []string {
	if n == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, e := range n.Adj {
		seen[e.To.Country] = struct{}{}
	}
	return sortedKeys(seen)
}

// CountriesFromCity returns the distinct countries served by direct flights
// out of any airport in the city, sorted. City matching is case- and
// space-insensitive.
func (g *Graph) CountriesFromCity(city string) []string {
	seen := make(map[string]struct{})
	want := normalize(city)
	for _, n := range g.nodes {
		if normalize(n.City) != want {
			continue
		}
		for _, e := range n.Adj {
			seen[e.To.Country] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func cityKey(n *Node) string { return n.City + ", " + n.Country }

func distinctAttr(nodes []*Node, attr func(*Node) string) []string {
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		seen[attr(n)] = struct{}{}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
