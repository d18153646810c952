package graph

import (
	"testing"
)

func pathCodes(path []*Node) []string {
	out := make([]string, len(path))
	for i, n := range path {
		out[i] = n.Code
	}
	return out
}

func samePath(got []*Node, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Code != want[i] {
			return false
		}
	}
	return true
}

func TestShortestPathsSingle(t *testing.T) {
	g := buildTestGraph(t)

	paths := g.ShortestPaths(g.Node("JFK"), g.Node("LAX"))
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	if !samePath(paths[0], []string{"JFK", "ORD", "LAX"}) {
		t.Errorf("path = %v, want [JFK ORD LAX]", pathCodes(paths[0]))
	}
	if d := g.PathDistance(paths[0]); d != 2700 {
		t.Errorf("PathDistance = %v, want 2700", d)
	}
}

func TestShortestPathsAllMinimal(t *testing.T) {
	// Diamond: two distinct 2-hop paths A->D.
	g := New()
	for _, code := range []string{"AAA", "BBB", "CCC", "DDD"} {
		g.AddAirport(Airport{Code: code})
	}
	g.AddRoute("AAA", "BBB", 1)
	g.AddRoute("AAA", "CCC", 1)
	g.AddRoute("BBB", "DDD", 1)
	g.AddRoute("CCC", "DDD", 1)
	// A longer detour that must not appear.
	g.AddAirport(Airport{Code: "EEE"})
	g.AddRoute("AAA", "EEE", 1)
	g.AddRoute("EEE", "BBB", 1)

	paths := g.ShortestPaths(g.Node("AAA"), g.Node("DDD"))
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	for _, p := range paths {
		if len(p) != 3 {
			t.Errorf("path %v has %d nodes, want 3", pathCodes(p), len(p))
		}
	}
}

func TestShortestPathsEdgeCases(t *testing.T) {
	g := buildTestGraph(t)

	t.Run("source equals target", func(t *testing.T) {
		jfk := g.Node("JFK")
		paths := g.ShortestPaths(jfk, jfk)
		if len(paths) != 1 || !samePath(paths[0], []string{"JFK"}) {
			t.Errorf("paths = %v, want single trivial path", paths)
		}
	})

	t.Run("unreachable target", func(t *testing.T) {
		if paths := g.ShortestPaths(g.Node("JFK"), g.Node("LIS")); len(paths) != 0 {
			t.Errorf("got %d paths to isolated node, want 0", len(paths))
		}
	})

	t.Run("direction respected", func(t *testing.T) {
		if paths := g.ShortestPaths(g.Node("LAX"), g.Node("JFK")); len(paths) != 0 {
			t.Errorf("got %d paths against edge direction, want 0", len(paths))
		}
	})

	t.Run("nil endpoints", func(t *testing.T) {
		if paths := g.ShortestPaths(nil, g.Node("JFK")); paths != nil {
			t.Errorf("nil source: got %v, want nil", paths)
		}
		if paths := g.ShortestPaths(g.Node("JFK"), nil); paths != nil {
			t.Errorf("nil target: got %v, want nil", paths)
		}
	})
}

func TestComposeVia(t *testing.T) {
	g := buildTestGraph(t)

	t.Run("single waypoint", func(t *testing.T) {
		paths := g.ComposeVia(g.Node("JFK"), []*Node{g.Node("LHR")}, g.Node("CDG"), 0)
		if len(paths) != 1 {
			t.Fatalf("got %d paths, want 1", len(paths))
		}
		if !samePath(paths[0], []string{"JFK", "LHR", "CDG"}) {
			t.Errorf("path = %v, want [JFK LHR CDG]", pathCodes(paths[0]))
		}
	})

	t.Run("waypoint forces longer route", func(t *testing.T) {
		paths := g.ComposeVia(g.Node("JFK"), []*Node{g.Node("CDG")}, g.Node("ORD"), 0)
		if len(paths) != 1 {
			t.Fatalf("got %d paths, want 1", len(paths))
		}
		if !samePath(paths[0], []string{"JFK", "LHR", "CDG", "JFK", "ORD"}) {
			t.Errorf("path = %v", pathCodes(paths[0]))
		}
	})

	t.Run("unreachable segment", func(t *testing.T) {
		if paths := g.ComposeVia(g.Node("JFK"), []*Node{g.Node("LIS")}, g.Node("LAX"), 0); len(paths) != 0 {
			t.Errorf("got %d paths through isolated waypoint, want 0", len(paths))
		}
	})

	t.Run("no waypoints falls back to shortest", func(t *testing.T) {
		paths := g.ComposeVia(g.Node("JFK"), nil, g.Node("LAX"), 0)
		if len(paths) != 1 || !samePath(paths[0], []string{"JFK", "ORD", "LAX"}) {
			t.Errorf("paths = %v", paths)
		}
	})
}

func TestComposeViaCap(t *testing.T) {
	// Two independent diamonds in sequence give 2x2 compositions.
	g := New()
	for _, code := range []string{"AAA", "BBB", "CCC", "MMM", "DDD", "EEE", "ZZZ"} {
		g.AddAirport(Airport{Code: code})
	}
	g.AddRoute("AAA", "BBB", 1)
	g.AddRoute("AAA", "CCC", 1)
	g.AddRoute("BBB", "MMM", 1)
	g.AddRoute("CCC", "MMM", 1)
	g.AddRoute("MMM", "DDD", 1)
	g.AddRoute("MMM", "EEE", 1)
	g.AddRoute("DDD", "ZZZ", 1)
	g.AddRoute("EEE", "ZZZ", 1)

	all := g.ComposeVia(g.Node("AAA"), []*Node{g.Node("MMM")}, g.Node("ZZZ"), 0)
	if len(all) != 4 {
		t.Fatalf("got %d compositions, want 4", len(all))
	}

	capped := g.ComposeVia(g.Node("AAA"), []*Node{g.Node("MMM")}, g.Node("ZZZ"), 3)
	if len(capped) != 3 {
		t.Errorf("got %d compositions with cap 3, want 3", len(capped))
	}
}

func TestSharedAirlines(t *testing.T) {
	g := buildTestGraph(t)

	aal := Airline{Code: "AAL", Name: "American Airlines"}
	ual := Airline{Code: "UAL", Name: "United Airlines"}
	dal := Airline{Code: "DAL", Name: "Delta Air Lines"}

	leg1 := g.RouteBetween(g.Node("JFK"), g.Node("ORD"))
	leg2 := g.RouteBetween(g.Node("ORD"), g.Node("LAX"))
	leg1.AddAirline(aal)
	leg1.AddAirline(ual)
	leg1.AddAirline(dal)
	leg2.AddAirline(ual)
	leg2.AddAirline(dal)

	path := []*Node{g.Node("JFK"), g.Node("ORD"), g.Node("LAX")}
	shared := g.SharedAirlines(path)
	if len(shared) != 2 {
		t.Fatalf("got %d shared airlines, want 2", len(shared))
	}
	if shared[0].Code != "DAL" || shared[1].Code != "UAL" {
		t.Errorf("shared = [%s %s], want [DAL UAL]", shared[0].Code, shared[1].Code)
	}
}

func TestSharedAirlinesEmpty(t *testing.T) {
	g := buildTestGraph(t)

	leg1 := g.RouteBetween(g.Node("JFK"), g.Node("ORD"))
	leg2 := g.RouteBetween(g.Node("ORD"), g.Node("LAX"))
	leg1.AddAirline(Airline{Code: "AAL"})
	leg2.AddAirline(Airline{Code: "UAL"})

	path := []*Node{g.Node("JFK"), g.Node("ORD"), g.Node("LAX")}
	if shared := g.SharedAirlines(path); shared != nil {
		t.Errorf("disjoint legs: shared = %v, want nil", shared)
	}

	if shared := g.SharedAirlines([]*Node{g.Node("JFK")}); shared != nil {
		t.Errorf("single-node path: shared = %v, want nil", shared)
	}

	// A leg without a direct route cannot be operated by anyone.
	broken := []*Node{g.Node("JFK"), g.Node("LAX")}
	if shared := g.SharedAirlines(broken); shared != nil {
		t.Errorf("broken leg: shared = %v, want nil", shared)
	}
}

func BenchmarkShortestPaths(b *testing.B) {
	g := buildBenchGraph()
	src := g.Nodes()[0]
	dst := g.Nodes()[len(g.Nodes())-1]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ShortestPaths(src, dst)
	}
}

// buildBenchGraph wires 10 layers of 10 airports with full bipartite edges
// between consecutive layers.
func buildBenchGraph() *Graph {
	g := New()
	code := func(layer, i int) string {
		return string(rune('A'+layer)) + string(rune('A'+i)) + "X"
	}
	const layers, width = 10, 10
	for l := 0; l < layers; l++ {
		for i := 0; i < width; i++ {
			g.AddAirport(Airport{Code: code(l, i)})
		}
	}
	for l := 0; l < layers-1; l++ {
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				g.AddRoute(code(l, i), code(l+1, j), 1)
			}
		}
	}
	return g
}
