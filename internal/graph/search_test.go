package graph

import (
	"testing"

	"github.com/lmcosta-dev/airgraph/internal/geo"
)

func TestSearchByCity(t *testing.T) {
	g := buildTestGraph(t)

	tests := []struct {
		term string
		want []string
	}{
		{"new york", []string{"JFK"}},
		{"NewYork", []string{"JFK"}},
		{"london", []string{"LHR"}},
		{"os ange", []string{"LAX"}},
		{"atlantis", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := g.SearchByCity(tt.term)
		if len(got) != len(tt.want) {
			t.Errorf("SearchByCity(%q) = %v, want %v", tt.term, pathCodes(got), tt.want)
			continue
		}
		for i := range tt.want {
			if got[i].Code != tt.want[i] {
				t.Errorf("SearchByCity(%q)[%d] = %s, want %s", tt.term, i, got[i].Code, tt.want[i])
			}
		}
	}
}

func TestSearchByCountrySorted(t *testing.T) {
	g := buildTestGraph(t)

	got := g.SearchByCountry("united states")
	if len(got) != 3 {
		t.Fatalf("got %d airports, want 3", len(got))
	}
	// Ordered by airport name: JFK, LAX, ORD all share the "International"
	// suffix so name order follows the code prefix.
	for i := 1; i < len(got); i++ {
		if got[i-1].Name > got[i].Name {
			t.Errorf("results not sorted by name: %s > %s", got[i-1].Name, got[i].Name)
		}
	}
}

func TestSearchByName(t *testing.T) {
	g := buildTestGraph(t)
	got := g.SearchByName("jfk international")
	if len(got) != 1 || got[0].Code != "JFK" {
		t.Errorf("SearchByName = %v, want [JFK]", pathCodes(got))
	}
}

func TestAirportsInCity(t *testing.T) {
	g := buildTestGraph(t)
	g.AddAirport(Airport{Code: "EWR", Name: "Newark Liberty", City: "New York", Country: "United States"})

	got := g.AirportsInCity("New York")
	if len(got) != 2 {
		t.Fatalf("AirportsInCity = %v, want 2 airports", pathCodes(got))
	}

	// Substring of a city name must not match exactly.
	if got := g.AirportsInCity("New"); len(got) != 0 {
		t.Errorf("partial city matched: %v", pathCodes(got))
	}
}

func TestNearest(t *testing.T) {
	g := New()
	g.AddAirport(Airport{Code: "AAA", Name: "Alpha", Location: geo.Coordinates{Lat: 0, Lon: 0}})
	g.AddAirport(Airport{Code: "BBB", Name: "Bravo", Location: geo.Coordinates{Lat: 10, Lon: 0}})
	g.AddAirport(Airport{Code: "CCC", Name: "Charlie", Location: geo.Coordinates{Lat: -10, Lon: 0}})

	t.Run("single nearest", func(t *testing.T) {
		got := g.Nearest(geo.Coordinates{Lat: 1, Lon: 0})
		if len(got) != 1 || got[0].Code != "AAA" {
			t.Errorf("Nearest = %v, want [AAA]", pathCodes(got))
		}
	})

	t.Run("equidistant ties", func(t *testing.T) {
		got := g.Nearest(geo.Coordinates{Lat: 0, Lon: 0})
		if len(got) != 1 || got[0].Code != "AAA" {
			t.Fatalf("Nearest at origin = %v, want [AAA]", pathCodes(got))
		}
		tied := g.Nearest(geo.Coordinates{Lat: 5, Lon: 0})
		// AAA and BBB are both 5 degrees of latitude away.
		if len(tied) != 2 || tied[0].Code != "AAA" || tied[1].Code != "BBB" {
			t.Errorf("Nearest ties = %v, want [AAA BBB] sorted by name", pathCodes(tied))
		}
	})

	t.Run("empty graph", func(t *testing.T) {
		empty := New()
		if got := empty.Nearest(geo.Coordinates{}); got != nil {
			t.Errorf("Nearest on empty graph = %v, want nil", got)
		}
	})
}
