// Package store provides a repository layer for airport, airline and route
// operations.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lmcosta-dev/airgraph/internal/database"
	"github.com/lmcosta-dev/airgraph/internal/geo"
)

type Store struct {
	db *database.DB
}

func New(db *database.DB) *Store {
	return &Store{db: db}
}

type Airline struct {
	Code     string
	Name     string
	Callsign string
	Country  string
}

type Airport struct {
	Code      string
	Name      string
	City      string
	Country   string
	Latitude  float64
	Longitude float64
}

// Flight is one scheduled flight record from the dataset: a carrier flying
// an ordered airport pair.
type Flight struct {
	Origin      string
	Destination string
	AirlineCode string
}

const batchSize = 500

// UpsertAirlines inserts or refreshes carriers in batches.
func (s *Store) UpsertAirlines(airlines []Airline) error {
	if len(airlines) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < len(airlines); i += batchSize {
		end := i + batchSize
		if end > len(airlines) {
			end = len(airlines)
		}
		batch := airlines[i:end]

		var placeholders []string
		var args []interface{}
		for _, a := range batch {
			placeholders = append(placeholders, "(?, ?, ?, ?)")
			args = append(args, a.Code, a.Name, a.Callsign, a.Country)
		}

		query := fmt.Sprintf(`
			INSERT INTO airlines (code, name, callsign, country)
			VALUES %s
			ON CONFLICT(code) DO UPDATE SET
				name = excluded.name,
				callsign = excluded.callsign,
				country = excluded.country
		`, strings.Join(placeholders, ", "))

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("inserting airlines batch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// UpsertAirports inserts or refreshes airports in batches.
func (s *Store) UpsertAirports(airports []Airport) error {
	if len(airports) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < len(airports); i += batchSize {
		end := i + batchSize
		if end > len(airports) {
			end = len(airports)
		}
		batch := airports[i:end]

		var placeholders []string
		var args []interface{}
		for _, a := range batch {
			placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?)")
			args = append(args, a.Code, a.Name, a.City, a.Country, a.Latitude, a.Longitude)
		}

		query := fmt.Sprintf(`
			INSERT INTO airports (code, name, city, country, latitude, longitude)
			VALUES %s
			ON CONFLICT(code) DO UPDATE SET
				name = excluded.name,
				city = excluded.city,
				country = excluded.country,
				latitude = excluded.latitude,
				longitude = excluded.longitude
		`, strings.Join(placeholders, ", "))

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("inserting airports batch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// AddFlights records flight entries, merging them onto routes. Each entry
// increments the route's flight counter and the carrier's per-route tally;
// new ordered pairs get a route row with the haversine distance between the
// stored airport coordinates. Flights referencing an unknown airport are
// skipped; an unknown carrier still counts on the route but is not linked.
// Returns the number of flights recorded.
func (s *Store) AddFlights(flights []Flight) (int, error) {
	if len(flights) == 0 {
		return 0, nil
	}

	coords, err := s.airportCoordinates()
	if err != nil {
		return 0, err
	}

	knownAirlines, err := s.airlineCodes()
	if err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	routeStmt, err := tx.Prepare(`
		INSERT INTO routes (origin, destination, distance_km, flights)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(origin, destination) DO UPDATE SET flights = flights + 1
		RETURNING id
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing route statement: %w", err)
	}
	defer routeStmt.Close()

	airlineStmt, err := tx.Prepare(`
		INSERT INTO route_airlines (route_id, airline_code, flights)
		VALUES (?, ?, 1)
		ON CONFLICT(route_id, airline_code) DO UPDATE SET flights = flights + 1
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing route airline statement: %w", err)
	}
	defer airlineStmt.Close()

	added := 0
	for _, f := range flights {
		from, okFrom := coords[f.Origin]
		to, okTo := coords[f.Destination]
		if !okFrom || !okTo {
			continue
		}

		var routeID int64
		distance := geo.Haversine(from, to)
		if err := routeStmt.QueryRow(f.Origin, f.Destination, distance).Scan(&routeID); err != nil {
			return added, fmt.Errorf("upserting route %s-%s: %w", f.Origin, f.Destination, err)
		}

		if _, known := knownAirlines[f.AirlineCode]; known {
			if _, err := airlineStmt.Exec(routeID, f.AirlineCode); err != nil {
				return added, fmt.Errorf("upserting route airline %s: %w", f.AirlineCode, err)
			}
		}
		added++
	}

	if err := tx.Commit(); err != nil {
		return added, fmt.Errorf("committing transaction: %w", err)
	}
	return added, nil
}

func (s *Store) airportCoordinates() (map[string]geo.Coordinates, error) {
	rows, err := s.db.Query(`SELECT code, latitude, longitude FROM airports`)
	if err != nil {
		return nil, fmt.Errorf("querying airport coordinates: %w", err)
	}
	defer rows.Close()

	coords := make(map[string]geo.Coordinates)
	for rows.Next() {
		var code string
		var c geo.Coordinates
		if err := rows.Scan(&code, &c.Lat, &c.Lon); err != nil {
			return nil, fmt.Errorf("scanning airport coordinates: %w", err)
		}
		coords[code] = c
	}
	return coords, rows.Err()
}

func (s *Store) airlineCodes() (map[string]struct{}, error) {
	rows, err := s.db.Query(`SELECT code FROM airlines`)
	if err != nil {
		return nil, fmt.Errorf("querying airline codes: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning airline code: %w", err)
		}
		codes[code] = struct{}{}
	}
	return codes, rows.Err()
}

func (s *Store) GetAirport(code string) (*Airport, error) {
	row := s.db.QueryRow(`
		SELECT code, name, city, country, latitude, longitude
		FROM airports WHERE code = ?
	`, code)

	a := &Airport{}
	err := row.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Latitude, &a.Longitude)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying airport: %w", err)
	}
	return a, nil
}

func (s *Store) GetAirline(code string) (*Airline, error) {
	row := s.db.QueryRow(`
		SELECT code, name, callsign, country
		FROM airlines WHERE code = ?
	`, code)

	a := &Airline{}
	err := row.Scan(&a.Code, &a.Name, &a.Callsign, &a.Country)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying airline: %w", err)
	}
	return a, nil
}

func (s *Store) ListAirlines() ([]Airline, error) {
	rows, err := s.db.Query(`SELECT code, name, callsign, country FROM airlines ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("querying airlines: %w", err)
	}
	defer rows.Close()

	var airlines []Airline
	for rows.Next() {
		var a Airline
		if err := rows.Scan(&a.Code, &a.Name, &a.Callsign, &a.Country); err != nil {
			return nil, fmt.Errorf("scanning airline: %w", err)
		}
		airlines = append(airlines, a)
	}
	return airlines, rows.Err()
}

// RouteAirline is a carrier operating a route with its flight tally.
type RouteAirline struct {
	Code     string
	Name     string
	Callsign string
	Country  string
	Flights  int
}

// Route is a merged directed route with the carriers operating it.
type Route struct {
	ID          int64
	Origin      string
	Destination string
	Distance    float64
	Flights     int
	Airlines    []RouteAirline
}

type GraphData struct {
	Airports []Airport
	Routes   []Route
}

// GetGraphData reads every airport and route, with per-route carriers, for
// the graph loader.
func (s *Store) GetGraphData() (*GraphData, error) {
	data := &GraphData{}

	rows, err := s.db.Query(`
		SELECT code, name, city, country, latitude, longitude
		FROM airports ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("querying airports: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Latitude, &a.Longitude); err != nil {
			return nil, fmt.Errorf("scanning airport: %w", err)
		}
		data.Airports = append(data.Airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating airports: %w", err)
	}

	routesByID := make(map[int64]int)
	rows, err = s.db.Query(`
		SELECT id, origin, destination, distance_km, flights
		FROM routes ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying routes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.ID, &r.Origin, &r.Destination, &r.Distance, &r.Flights); err != nil {
			return nil, fmt.Errorf("scanning route: %w", err)
		}
		routesByID[r.ID] = len(data.Routes)
		data.Routes = append(data.Routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routes: %w", err)
	}

	rows, err = s.db.Query(`
		SELECT ra.route_id, ra.airline_code, ra.flights,
		       COALESCE(a.name, ''), COALESCE(a.callsign, ''), COALESCE(a.country, '')
		FROM route_airlines ra
		LEFT JOIN airlines a ON a.code = ra.airline_code
	`)
	if err != nil {
		return nil, fmt.Errorf("querying route airlines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var routeID int64
		var ra RouteAirline
		if err := rows.Scan(&routeID, &ra.Code, &ra.Flights, &ra.Name, &ra.Callsign, &ra.Country); err != nil {
			return nil, fmt.Errorf("scanning route airline: %w", err)
		}
		if idx, ok := routesByID[routeID]; ok {
			data.Routes[idx].Airlines = append(data.Routes[idx].Airlines, ra)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating route airlines: %w", err)
	}

	return data, nil
}
