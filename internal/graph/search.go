package graph

import (
	"sort"
	"strings"

	"github.com/lmcosta-dev/airgraph/internal/geo"
)

// normalize lowercases a term and strips spaces so "New York" matches
// "newyork".
func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// searchBy returns every airport whose projected attribute contains the
// term, compared case- and space-insensitively, ordered by airport name.
func (g *Graph) searchBy(term string, attr func(*Node) string) []*Node {
	want := normalize(term)
	if want == "" {
		return nil
	}

	var out []*Node
	for _, n := range g.nodes {
		if strings.Contains(normalize(attr(n)), want) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SearchByName finds airports by name substring.
func (g *Graph) SearchByName(term string) []*Node {
	return g.searchBy(term, func(n *Node) string { return n.Name })
}

// SearchByCity finds airports by city substring.
func (g *Graph) SearchByCity(term string) []*Node {
	return g.searchBy(term, func(n *Node) string { return n.City })
}

// SearchByCountry finds airports by country substring.
func (g *Graph) SearchByCountry(term string) []*Node {
	return g.searchBy(term, func(n *Node) string { return n.Country })
}

// AirportsInCity returns the airports whose city matches exactly, compared
// case- and space-insensitively, ordered by airport name.
func (g *Graph) AirportsInCity(city string) []*Node {
	want := normalize(city)
	if want == "" {
		return nil
	}

	var out []*Node
	for _, n := range g.nodes {
		if normalize(n.City) == want {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Nearest returns every airport at the minimum great-circle distance from
// the given coordinates, ordered by name. An empty graph yields nil.
func (g *Graph) Nearest(c geo.Coordinates) []*Node {
	var (
		nearest []*Node
		best    = -1.0
	)
	for _, n := range g.nodes {
		d := geo.Haversine(c, n.Location)
		switch {
		case best < 0 || d < best:
			best = d
			nearest = nearest[:0]
			nearest = append(nearest, n)
		case d == best:
			nearest = append(nearest, n)
		}
	}
	sort.Slice(nearest, func(i, j int) bool { return nearest[i].Name < nearest[j].Name })
	return nearest
}
