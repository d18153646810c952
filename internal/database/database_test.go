package database

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "airgraph-test-*")
	if err != nil {
		t.Fatalf("creating temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if db.Path() != dbPath {
		t.Errorf("Path() = %q, want %q", db.Path(), dbPath)
	}

	var one int
	if err := db.QueryRow("SELECT 1").Scan(&one); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if one != 1 {
		t.Errorf("SELECT 1 = %d, want 1", one)
	}

	var fkEnabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("checking foreign_keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Error("foreign keys not enabled")
	}

	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("checking journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("journal_mode = %q, want 'wal'", journalMode)
	}
}

func TestMigrate(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "airgraph-test-*")
	if err != nil {
		t.Fatalf("creating temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	var version int
	err = db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	if err != nil {
		t.Fatalf("querying schema_migrations: %v", err)
	}
	if version != 2 {
		t.Errorf("schema version = %d, want 2", version)
	}

	_, err = db.Exec(`INSERT INTO airports (code, name, city, country) VALUES ('JFK', 'John F. Kennedy International', 'New York', 'United States')`)
	if err != nil {
		t.Fatalf("inserting into airports: %v", err)
	}
	_, err = db.Exec(`INSERT INTO airports (code, name, city, country) VALUES ('LAX', 'Los Angeles International', 'Los Angeles', 'United States')`)
	if err != nil {
		t.Fatalf("inserting into airports: %v", err)
	}

	_, err = db.Exec(`INSERT INTO routes (origin, destination, distance_km, flights) VALUES ('JFK', 'LAX', 3983, 1)`)
	if err != nil {
		t.Fatalf("inserting into routes: %v", err)
	}

	// UNIQUE(origin, destination) rejects a second edge for the pair.
	_, err = db.Exec(`INSERT INTO routes (origin, destination, distance_km) VALUES ('JFK', 'LAX', 3983)`)
	if err == nil {
		t.Error("expected unique constraint error for duplicate route, got nil")
	}

	var routeID int64
	if err := db.QueryRow("SELECT id FROM routes WHERE origin = 'JFK'").Scan(&routeID); err != nil {
		t.Fatalf("getting route id: %v", err)
	}

	_, err = db.Exec(`INSERT INTO airlines (code, name) VALUES ('DAL', 'Delta Air Lines')`)
	if err != nil {
		t.Fatalf("inserting airline: %v", err)
	}
	_, err = db.Exec(`INSERT INTO route_airlines (route_id, airline_code, flights) VALUES (?, 'DAL', 1)`, routeID)
	if err != nil {
		t.Fatalf("inserting route airline: %v", err)
	}

	_, err = db.Exec("DELETE FROM routes WHERE id = ?", routeID)
	if err != nil {
		t.Fatalf("deleting route: %v", err)
	}

	var linkCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM route_airlines").Scan(&linkCount); err != nil {
		t.Fatalf("counting route airlines: %v", err)
	}
	if linkCount != 0 {
		t.Errorf("route_airlines not cascade deleted: count = %d, want 0", linkCount)
	}

	// Migrations should be idempotent
	if err := db.Migrate(); err != nil {
		t.Fatalf("re-running migrations: %v", err)
	}
}

func TestStats(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "airgraph-test-*")
	if err != nil {
		t.Fatalf("creating temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO airports (code, name, city, country) VALUES
			('JFK', 'John F. Kennedy International', 'New York', 'United States'),
			('ORD', 'O''Hare International', 'Chicago', 'United States'),
			('LAX', 'Los Angeles International', 'Los Angeles', 'United States')
	`)
	if err != nil {
		t.Fatalf("inserting test airports: %v", err)
	}

	_, err = db.Exec(`INSERT INTO airlines (code, name) VALUES ('AAL', 'American Airlines'), ('UAL', 'United Airlines')`)
	if err != nil {
		t.Fatalf("inserting test airlines: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO routes (origin, destination, distance_km, flights) VALUES
			('JFK', 'ORD', 1188, 3),
			('ORD', 'LAX', 2808, 2)
	`)
	if err != nil {
		t.Fatalf("inserting test routes: %v", err)
	}

	stats, err := db.Stats()
	if err != nil {
		t.Fatalf("getting stats: %v", err)
	}

	if stats.Airports != 3 {
		t.Errorf("Airports = %d, want 3", stats.Airports)
	}
	if stats.Airlines != 2 {
		t.Errorf("Airlines = %d, want 2", stats.Airlines)
	}
	if stats.Routes != 2 {
		t.Errorf("Routes = %d, want 2", stats.Routes)
	}
	if stats.Flights != 5 {
		t.Errorf("Flights = %d, want 5", stats.Flights)
	}
	if stats.DatabaseSizeBytes <= 0 {
		t.Errorf("DatabaseSizeBytes = %d, want > 0", stats.DatabaseSizeBytes)
	}
}
