package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lmcosta-dev/airgraph/internal/database"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "airgraph-store-test-*")
	if err != nil {
		t.Fatalf("creating temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	db, err := database.Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return New(db)
}

func seedTestData(t *testing.T, s *Store) {
	t.Helper()

	airports := []Airport{
		{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "United States", Latitude: 40.6413, Longitude: -73.7781},
		{Code: "ORD", Name: "O'Hare International", City: "Chicago", Country: "United States", Latitude: 41.9742, Longitude: -87.9073},
		{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "United States", Latitude: 33.9416, Longitude: -118.4085},
	}
	if err := s.UpsertAirports(airports); err != nil {
		t.Fatalf("upserting airports: %v", err)
	}

	airlines := []Airline{
		{Code: "AAL", Name: "American Airlines", Callsign: "AMERICAN", Country: "United States"},
		{Code: "UAL", Name: "United Airlines", Callsign: "UNITED", Country: "United States"},
	}
	if err := s.UpsertAirlines(airlines); err != nil {
		t.Fatalf("upserting airlines: %v", err)
	}
}

func TestUpsertAirports(t *testing.T) {
	s := setupTestStore(t)
	seedTestData(t, s)

	a, err := s.GetAirport("JFK")
	if err != nil {
		t.Fatalf("GetAirport: %v", err)
	}
	if a == nil || a.City != "New York" {
		t.Fatalf("GetAirport(JFK) = %+v, want New York", a)
	}

	// Re-upserting refreshes fields instead of erroring.
	if err := s.UpsertAirports([]Airport{{Code: "JFK", Name: "JFK", City: "NYC", Country: "United States"}}); err != nil {
		t.Fatalf("re-upserting airport: %v", err)
	}
	a, _ = s.GetAirport("JFK")
	if a.City != "NYC" {
		t.Errorf("City after refresh = %q, want NYC", a.City)
	}

	missing, err := s.GetAirport("XXX")
	if err != nil {
		t.Fatalf("GetAirport(XXX): %v", err)
	}
	if missing != nil {
		t.Errorf("GetAirport(XXX) = %+v, want nil", missing)
	}
}

func TestUpsertAirlines(t *testing.T) {
	s := setupTestStore(t)
	seedTestData(t, s)

	a, err := s.GetAirline("AAL")
	if err != nil {
		t.Fatalf("GetAirline: %v", err)
	}
	if a == nil || a.Callsign != "AMERICAN" {
		t.Fatalf("GetAirline(AAL) = %+v", a)
	}

	list, err := s.ListAirlines()
	if err != nil {
		t.Fatalf("ListAirlines: %v", err)
	}
	if len(list) != 2 || list[0].Code != "AAL" || list[1].Code != "UAL" {
		t.Errorf("ListAirlines = %+v, want [AAL UAL]", list)
	}
}

func TestAddFlights(t *testing.T) {
	s := setupTestStore(t)
	seedTestData(t, s)

	flights := []Flight{
		{Origin: "JFK", Destination: "ORD", AirlineCode: "AAL"},
		{Origin: "JFK", Destination: "ORD", AirlineCode: "AAL"},
		{Origin: "JFK", Destination: "ORD", AirlineCode: "UAL"},
		{Origin: "ORD", Destination: "LAX", AirlineCode: "AAL"},
		{Origin: "JFK", Destination: "XXX", AirlineCode: "AAL"}, // unknown airport
	}

	added, err := s.AddFlights(flights)
	if err != nil {
		t.Fatalf("AddFlights: %v", err)
	}
	if added != 4 {
		t.Errorf("added = %d, want 4 (unknown airport skipped)", added)
	}

	data, err := s.GetGraphData()
	if err != nil {
		t.Fatalf("GetGraphData: %v", err)
	}

	if len(data.Airports) != 3 {
		t.Errorf("airports = %d, want 3", len(data.Airports))
	}
	if len(data.Routes) != 2 {
		t.Fatalf("routes = %d, want 2 (flights merge onto one route per pair)", len(data.Routes))
	}

	var jfkOrd *Route
	for i := range data.Routes {
		if data.Routes[i].Origin == "JFK" && data.Routes[i].Destination == "ORD" {
			jfkOrd = &data.Routes[i]
		}
	}
	if jfkOrd == nil {
		t.Fatal("JFK-ORD route missing")
	}
	if jfkOrd.Flights != 3 {
		t.Errorf("JFK-ORD flights = %d, want 3", jfkOrd.Flights)
	}
	if len(jfkOrd.Airlines) != 2 {
		t.Fatalf("JFK-ORD airlines = %d, want 2", len(jfkOrd.Airlines))
	}
	for _, ra := range jfkOrd.Airlines {
		switch ra.Code {
		case "AAL":
			if ra.Flights != 2 {
				t.Errorf("AAL flights = %d, want 2", ra.Flights)
			}
			if ra.Name != "American Airlines" {
				t.Errorf("AAL name = %q", ra.Name)
			}
		case "UAL":
			if ra.Flights != 1 {
				t.Errorf("UAL flights = %d, want 1", ra.Flights)
			}
		default:
			t.Errorf("unexpected airline %s on JFK-ORD", ra.Code)
		}
	}

	// JFK-ORD great-circle distance is roughly 1180 km.
	if jfkOrd.Distance < 1100 || jfkOrd.Distance > 1300 {
		t.Errorf("JFK-ORD distance = %.1f km, want ~1180", jfkOrd.Distance)
	}
}

func TestAddFlightsUnknownAirline(t *testing.T) {
	s := setupTestStore(t)
	seedTestData(t, s)

	added, err := s.AddFlights([]Flight{{Origin: "JFK", Destination: "LAX", AirlineCode: "ZZZ"}})
	if err != nil {
		t.Fatalf("AddFlights: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1 (route still counts)", added)
	}

	data, err := s.GetGraphData()
	if err != nil {
		t.Fatalf("GetGraphData: %v", err)
	}
	if len(data.Routes) != 1 {
		t.Fatalf("routes = %d, want 1", len(data.Routes))
	}
	if len(data.Routes[0].Airlines) != 0 {
		t.Errorf("unknown carrier linked: %+v", data.Routes[0].Airlines)
	}
}

func TestGetGraphDataEmpty(t *testing.T) {
	s := setupTestStore(t)

	data, err := s.GetGraphData()
	if err != nil {
		t.Fatalf("GetGraphData: %v", err)
	}
	if len(data.Airports) != 0 || len(data.Routes) != 0 {
		t.Errorf("empty store returned %d airports, %d routes", len(data.Airports), len(data.Routes))
	}
}
