// Package ingest parses the airport, airline and flight datasets and loads
// them into the store. Both a simplified headered CSV layout and the raw
// OpenFlights .dat layout are accepted.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lmcosta-dev/airgraph/internal/store"
)

// Two layouts per dataset are accepted, detected by row width. The
// simplified layout carries a header row; the raw OpenFlights .dat layout
// has no header and uses \N for missing values.
const (
	airportFields           = 6
	airportOpenFlightsWidth = 14
	airlineFields           = 4
	airlineOpenFlightsWidth = 8
	flightFields            = 3
	flightOpenFlightsWidth  = 9
)

// ParseAirports reads an airports CSV. Simplified layout:
// Code,Name,City,Country,Latitude,Longitude. Rows with an empty code or
// unparsable coordinates are skipped.
func ParseAirports(r io.Reader) ([]store.Airport, error) {
	records, openflights, err := readRecords(r, airportOpenFlightsWidth)
	if err != nil {
		return nil, fmt.Errorf("reading airports: %w", err)
	}

	var airports []store.Airport
	for _, rec := range records {
		var code, name, city, country, rawLat, rawLon string
		if openflights {
			if len(rec) < airportOpenFlightsWidth {
				continue
			}
			code, name, city, country = rec[4], rec[1], rec[2], rec[3]
			rawLat, rawLon = rec[6], rec[7]
		} else {
			if len(rec) < airportFields {
				continue
			}
			code, name, city, country = rec[0], rec[1], rec[2], rec[3]
			rawLat, rawLon = rec[4], rec[5]
		}

		code = cleanField(code)
		if code == "" {
			continue
		}
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(rawLat), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(rawLon), 64)
		if latErr != nil || lonErr != nil {
			slog.Warn("skipping airport with bad coordinates", "code", code)
			continue
		}
		airports = append(airports, store.Airport{
			Code:      code,
			Name:      cleanField(name),
			City:      cleanField(city),
			Country:   cleanField(country),
			Latitude:  lat,
			Longitude: lon,
		})
	}
	return airports, nil
}

// ParseAirlines reads an airlines CSV. Simplified layout:
// Code,Name,Callsign,Country.
func ParseAirlines(r io.Reader) ([]store.Airline, error) {
	records, openflights, err := readRecords(r, airlineOpenFlightsWidth)
	if err != nil {
		return nil, fmt.Errorf("reading airlines: %w", err)
	}

	var airlines []store.Airline
	for _, rec := range records {
		var code, name, callsign, country string
		if openflights {
			if len(rec) < airlineOpenFlightsWidth {
				continue
			}
			code, name, callsign, country = rec[3], rec[1], rec[5], rec[6]
		} else {
			if len(rec) < airlineFields {
				continue
			}
			code, name, callsign, country = rec[0], rec[1], rec[2], rec[3]
		}

		code = cleanField(code)
		if code == "" || code == "-" {
			continue
		}
		airlines = append(airlines, store.Airline{
			Code:     code,
			Name:     cleanField(name),
			Callsign: cleanField(callsign),
			Country:  cleanField(country),
		})
	}
	return airlines, nil
}

// ParseFlights reads a flights CSV. Simplified layout:
// Source,Target,Airline. One row is one scheduled flight.
func ParseFlights(r io.Reader) ([]store.Flight, error) {
	records, openflights, err := readRecords(r, flightOpenFlightsWidth)
	if err != nil {
		return nil, fmt.Errorf("reading flights: %w", err)
	}

	var flights []store.Flight
	for _, rec := range records {
		var origin, destination, airline string
		if openflights {
			if len(rec) < flightOpenFlightsWidth {
				continue
			}
			airline, origin, destination = rec[0], rec[2], rec[4]
		} else {
			if len(rec) < flightFields {
				continue
			}
			origin, destination, airline = rec[0], rec[1], rec[2]
		}

		origin = cleanField(origin)
		destination = cleanField(destination)
		if origin == "" || destination == "" || origin == destination {
			continue
		}
		flights = append(flights, store.Flight{
			Origin:      origin,
			Destination: destination,
			AirlineCode: cleanField(airline),
		})
	}
	return flights, nil
}

// readRecords parses CSV rows. A first row as wide as the OpenFlights
// layout marks a headerless OpenFlights file; anything narrower is the
// simplified layout and its header row is dropped.
func readRecords(r io.Reader, openFlightsWidth int) ([][]string, bool, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, false, err
	}
	if len(records) == 0 {
		return nil, false, nil
	}
	if len(records[0]) >= openFlightsWidth {
		return records, true, nil
	}
	return records[1:], false, nil
}

// cleanField trims a CSV field and maps the OpenFlights null marker to "".
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if s == `\N` {
		return ""
	}
	return s
}

type Summary struct {
	Airports int
	Airlines int
	Flights  int
	Skipped  int
}

// Importer loads parsed datasets into the store.
type Importer struct {
	store *store.Store
}

func NewImporter(s *store.Store) *Importer {
	return &Importer{store: s}
}

// ImportAll parses and stores the three dataset files. Airports and airlines
// go in first so flight rows can resolve endpoints and carriers.
func (imp *Importer) ImportAll(airportsPath, airlinesPath, flightsPath string) (*Summary, error) {
	airports, err := parseFile(airportsPath, ParseAirports)
	if err != nil {
		return nil, err
	}
	airlines, err := parseFile(airlinesPath, ParseAirlines)
	if err != nil {
		return nil, err
	}
	flights, err := parseFile(flightsPath, ParseFlights)
	if err != nil {
		return nil, err
	}

	if err := imp.store.UpsertAirports(airports); err != nil {
		return nil, fmt.Errorf("storing airports: %w", err)
	}
	if err := imp.store.UpsertAirlines(airlines); err != nil {
		return nil, fmt.Errorf("storing airlines: %w", err)
	}

	added, err := imp.store.AddFlights(flights)
	if err != nil {
		return nil, fmt.Errorf("storing flights: %w", err)
	}

	summary := &Summary{
		Airports: len(airports),
		Airlines: len(airlines),
		Flights:  added,
		Skipped:  len(flights) - added,
	}
	slog.Info("import complete",
		"airports", summary.Airports,
		"airlines", summary.Airlines,
		"flights", summary.Flights,
		"skipped", summary.Skipped,
	)
	return summary, nil
}

func parseFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	items, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return items, nil
}
