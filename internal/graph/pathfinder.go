package graph

import "sort"

// DefaultMaxCompositions bounds the cross-product of segment choices when
// composing paths through waypoints. Branching per segment is small in
// practice (equal-length shortest paths are rare), but the product is
// combinatorial, so composition stops once the cap is reached.
const DefaultMaxCompositions = 1024

// ShortestPaths returns every minimum-hop path from source to target, each
// path an ordered node sequence starting at source and ending at target.
//
// The search is a breadth-first walk that carries the path used to reach
// each discovered node. The target is never marked visited, so after the
// first hit the current frontier keeps draining and every equal-length path
// reaching the target through already-discovered nodes is collected. Two
// paths are distinct when their node sequences differ. An unreachable
// target, or a nil endpoint, yields an empty set.
func (g *Graph) ShortestPaths(source, target *Node) [][]*Node {
	if source == nil || target == nil {
		return nil
	}
	if source == target {
		return [][]*Node{{source}}
	}

	type searchState struct {
		path []*Node
		node *Node
	}

	var paths [][]*Node
	shortest := -1

	visited := make(map[*Node]bool, len(g.nodes))
	visited[source] = true

	queue := []searchState{{path: []*Node{source}, node: source}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, e := range current.node.Adj {
			next := e.To
			if next == target {
				found := appendNode(current.path, next)
				if shortest < 0 || len(found) < shortest {
					paths = paths[:0]
					shortest = len(found)
				}
				if len(found) == shortest {
					paths = append(paths, found)
				}
				continue
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, searchState{path: appendNode(current.path, next), node: next})
			}
		}
	}

	return paths
}

// ComposeVia chains shortest-path segments from source through each waypoint
// in order and on to target, forming the cross-product of segment choices.
// Consecutive segments are concatenated at their shared endpoint;
// compositions whose endpoints fail to align are dropped. Returns an empty
// set when any segment is unreachable. maxCompositions caps the product;
// values <= 0 use DefaultMaxCompositions.
func (g *Graph) ComposeVia(source *Node, waypoints []*Node, target *Node, maxCompositions int) [][]*Node {
	if len(waypoints) == 0 {
		return g.ShortestPaths(source, target)
	}
	if maxCompositions <= 0 {
		maxCompositions = DefaultMaxCompositions
	}

	composed := g.ShortestPaths(source, waypoints[0])
	for i := 0; i < len(waypoints)-1 && len(composed) > 0; i++ {
		segment := g.ShortestPaths(waypoints[i], waypoints[i+1])
		composed = crossMerge(composed, segment, maxCompositions)
	}
	if len(composed) == 0 {
		return nil
	}

	final := g.ShortestPaths(waypoints[len(waypoints)-1], target)
	return crossMerge(composed, final, maxCompositions)
}

// SharedAirlines returns the carriers that operate every leg of the path,
// intersecting consecutive edge airline sets and short-circuiting the moment
// the running intersection empties. Paths with fewer than two nodes, or any
// leg without a direct route, yield nil.
func (g *Graph) SharedAirlines(path []*Node) []Airline {
	if len(path) < 2 {
		return nil
	}

	var shared map[string]Airline
	for i := 0; i < len(path)-1; i++ {
		e := g.RouteBetween(path[i], path[i+1])
		if e == nil || len(e.airlines) == 0 {
			return nil
		}
		if i == 0 {
			shared = make(map[string]Airline, len(e.airlines))
			for code, a := range e.airlines {
				shared[code] = a
			}
			continue
		}
		for code := range shared {
			if _, ok := e.airlines[code]; !ok {
				delete(shared, code)
			}
		}
		if len(shared) == 0 {
			return nil
		}
	}

	out := make([]Airline, 0, len(shared))
	for _, a := range shared {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// PathDistance sums the direct-route distances along the path in kilometers.
func (g *Graph) PathDistance(path []*Node) float64 {
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		total += g.DistanceBetween(path[i], path[i+1])
	}
	return total
}

func appendNode(path []*Node, n *Node) []*Node {
	out := make([]*Node, len(path)+1)
	copy(out, path)
	out[len(path)] = n
	return out
}

// crossMerge concatenates every a-path with every b-path that starts where
// the a-path ends, dropping misaligned pairs.
func crossMerge(a, b [][]*Node, limit int) [][]*Node {
	var merged [][]*Node
	for _, left := range a {
		for _, right := range b {
			if len(merged) >= limit {
				return merged
			}
			if len(left) == 0 || len(right) == 0 || left[len(left)-1] != right[0] {
				continue
			}
			joined := make([]*Node, 0, len(left)+len(right)-1)
			joined = append(joined, left...)
			joined = append(joined, right[1:]...)
			merged = append(merged, joined)
		}
	}
	return merged
}
