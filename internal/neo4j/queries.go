package neo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// AirportInput is an airport node to mirror.
type AirportInput struct {
	Code      string
	Name      string
	City      string
	Country   string
	Latitude  float64
	Longitude float64
}

// RouteInput is a directed ROUTE relationship to mirror.
type RouteInput struct {
	Origin      string
	Destination string
	Distance    float64
	Flights     int64
	Airlines    []string
}

// CreateAirportsBatch merges airport nodes in a single UNWIND transaction.
func (c *Client) CreateAirportsBatch(ctx context.Context, airports []AirportInput) error {
	rows := make([]map[string]interface{}, len(airports))
	for i, a := range airports {
		rows[i] = map[string]interface{}{
			"code":      a.Code,
			"name":      a.Name,
			"city":      a.City,
			"country":   a.Country,
			"latitude":  a.Latitude,
			"longitude": a.Longitude,
		}
	}

	_, err := c.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			UNWIND $airports AS row
			MERGE (a:Airport {code: row.code})
			SET a.name = row.name,
			    a.city = row.city,
			    a.country = row.country,
			    a.latitude = row.latitude,
			    a.longitude = row.longitude
		`
		_, err := tx.Run(ctx, query, map[string]interface{}{"airports": rows})
		return nil, err
	})
	return err
}

// CreateRoutesBatch merges ROUTE relationships in a single UNWIND transaction.
func (c *Client) CreateRoutesBatch(ctx context.Context, routes []RouteInput) error {
	rows := make([]map[string]interface{}, len(routes))
	for i, r := range routes {
		rows[i] = map[string]interface{}{
			"origin":      r.Origin,
			"destination": r.Destination,
			"distance":    r.Distance,
			"flights":     r.Flights,
			"airlines":    r.Airlines,
		}
	}

	_, err := c.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			UNWIND $routes AS row
			MATCH (origin:Airport {code: row.origin})
			MATCH (destination:Airport {code: row.destination})
			MERGE (origin)-[r:ROUTE]->(destination)
			SET r.distance_km = row.distance,
			    r.flights = row.flights,
			    r.airlines = row.airlines
		`
		_, err := tx.Run(ctx, query, map[string]interface{}{"routes": rows})
		return nil, err
	})
	return err
}
