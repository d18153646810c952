package neo4j

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Syncer mirrors the SQLite route store into Neo4j.
type Syncer struct {
	client *Client
	db     *sql.DB
}

func NewSyncer(client *Client, db *sql.DB) *Syncer {
	return &Syncer{client: client, db: db}
}

// SyncStats holds statistics about a sync operation.
type SyncStats struct {
	AirportsCreated int64
	RoutesCreated   int64
	Duration        time.Duration
}

// InitialSync performs a full sync from SQLite to Neo4j: schema, then every
// airport as a node, then every merged route as a relationship carrying
// distance, flight count and operating airline codes.
func (s *Syncer) InitialSync(ctx context.Context, batchSize int) (*SyncStats, error) {
	if batchSize == 0 {
		batchSize = 5000
	}

	start := time.Now()
	stats := &SyncStats{}

	slog.Info("starting initial sync to Neo4j")

	if err := s.client.InitializeSchema(ctx); err != nil {
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	airports, err := s.syncAirports(ctx, batchSize)
	if err != nil {
		return nil, fmt.Errorf("syncing airports: %w", err)
	}
	stats.AirportsCreated = airports
	slog.Info("airports synced", "count", airports)

	routes, err := s.syncRoutes(ctx, batchSize)
	if err != nil {
		return nil, fmt.Errorf("syncing routes: %w", err)
	}
	stats.RoutesCreated = routes
	slog.Info("routes synced", "count", routes)

	stats.Duration = time.Since(start)
	slog.Info("initial sync complete", "duration", stats.Duration)
	return stats, nil
}

func (s *Syncer) syncAirports(ctx context.Context, batchSize int) (int64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, name, city, country, latitude, longitude
		FROM airports ORDER BY code
	`)
	if err != nil {
		return 0, fmt.Errorf("querying airports: %w", err)
	}
	defer rows.Close()

	var total int64
	batch := make([]AirportInput, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.client.CreateAirportsBatch(ctx, batch); err != nil {
			return fmt.Errorf("creating airport batch: %w", err)
		}
		total += int64(len(batch))
		batch = batch[:0]
		return nil
	}

	for rows.Next() {
		var a AirportInput
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Latitude, &a.Longitude); err != nil {
			return total, fmt.Errorf("scanning airport: %w", err)
		}
		batch = append(batch, a)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}
	return total, rows.Err()
}

func (s *Syncer) syncRoutes(ctx context.Context, batchSize int) (int64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.origin, r.destination, r.distance_km, r.flights,
		       COALESCE(GROUP_CONCAT(ra.airline_code), '')
		FROM routes r
		LEFT JOIN route_airlines ra ON ra.route_id = r.id
		GROUP BY r.id
		ORDER BY r.id
	`)
	if err != nil {
		return 0, fmt.Errorf("querying routes: %w", err)
	}
	defer rows.Close()

	var total int64
	batch := make([]RouteInput, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.client.CreateRoutesBatch(ctx, batch); err != nil {
			return fmt.Errorf("creating route batch: %w", err)
		}
		total += int64(len(batch))
		batch = batch[:0]
		return nil
	}

	for rows.Next() {
		var r RouteInput
		var airlines string
		if err := rows.Scan(&r.Origin, &r.Destination, &r.Distance, &r.Flights, &airlines); err != nil {
			return total, fmt.Errorf("scanning route: %w", err)
		}
		if airlines != "" {
			r.Airlines = strings.Split(airlines, ",")
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}
	return total, rows.Err()
}

// VerifySync compares counts between SQLite and Neo4j.
func (s *Syncer) VerifySync(ctx context.Context) error {
	var sqliteAirports, sqliteRoutes int64

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM airports").Scan(&sqliteAirports); err != nil {
		return fmt.Errorf("counting SQLite airports: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM routes").Scan(&sqliteRoutes); err != nil {
		return fmt.Errorf("counting SQLite routes: %w", err)
	}

	neo4jStats, err := s.client.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("getting Neo4j stats: %w", err)
	}

	slog.Info("sync counts",
		"sqlite_airports", sqliteAirports,
		"sqlite_routes", sqliteRoutes,
		"neo4j_airports", neo4jStats.AirportCount,
		"neo4j_routes", neo4jStats.RouteCount,
	)

	if sqliteAirports != neo4jStats.AirportCount {
		return fmt.Errorf("airport count mismatch: SQLite has %d, Neo4j has %d",
			sqliteAirports, neo4jStats.AirportCount)
	}
	if sqliteRoutes != neo4jStats.RouteCount {
		return fmt.Errorf("route count mismatch: SQLite has %d, Neo4j has %d",
			sqliteRoutes, neo4jStats.RouteCount)
	}

	slog.Info("sync verification passed")
	return nil
}
