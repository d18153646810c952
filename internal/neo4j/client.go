// Package neo4j mirrors the route network into a Neo4j database.
package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Client wraps the Neo4j driver and provides connection management.
type Client struct {
	driver   neo4j.DriverWithContext
	uri      string
	database string
}

// Config holds Neo4j connection configuration.
type Config struct {
	URI      string
	Username string
	Password string
	Database string

	MaxConnectionPoolSize        int
	ConnectionAcquisitionTimeout time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.MaxConnectionPoolSize == 0 {
		cfg.MaxConnectionPoolSize = 50
	}
	if cfg.ConnectionAcquisitionTimeout == 0 {
		cfg.ConnectionAcquisitionTimeout = 60 * time.Second
	}

	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
		func(config *neo4j.Config) {
			config.MaxConnectionPoolSize = cfg.MaxConnectionPoolSize
			config.ConnectionAcquisitionTimeout = cfg.ConnectionAcquisitionTimeout
		},
	)
	if err != nil {
		return nil, fmt.Errorf("creating Neo4j driver: %w", err)
	}

	return &Client{driver: driver, uri: cfg.URI, database: cfg.Database}, nil
}

// VerifyConnectivity checks if the Neo4j database is reachable.
func (c *Client) VerifyConnectivity(ctx context.Context) error {
	if err := c.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("Neo4j connectivity check failed: %w", err)
	}
	return nil
}

// Close closes the driver connection pool.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

func (c *Client) newReadSession(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.database,
	})
}

func (c *Client) newWriteSession(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.database,
	})
}

// ExecuteRead runs a read transaction.
func (c *Client) ExecuteRead(ctx context.Context, work neo4j.ManagedTransactionWork) (interface{}, error) {
	session := c.newReadSession(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, work)
	if err != nil {
		return nil, fmt.Errorf("read transaction failed: %w", err)
	}
	return result, nil
}

// ExecuteWrite runs a write transaction.
func (c *Client) ExecuteWrite(ctx context.Context, work neo4j.ManagedTransactionWork) (interface{}, error) {
	session := c.newWriteSession(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, work)
	if err != nil {
		return nil, fmt.Errorf("write transaction failed: %w", err)
	}
	return result, nil
}

// Stats holds database statistics.
type Stats struct {
	AirportCount int64
	RouteCount   int64
}

// GetStats counts Airport nodes and ROUTE relationships.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	result, err := c.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		nodeResult, err := tx.Run(ctx, "MATCH (a:Airport) RETURN count(a) as count", nil)
		if err != nil {
			return nil, err
		}
		nodeRecord, err := nodeResult.Single(ctx)
		if err != nil {
			return nil, err
		}
		airportCount, _ := nodeRecord.Get("count")

		edgeResult, err := tx.Run(ctx, "MATCH ()-[r:ROUTE]->() RETURN count(r) as count", nil)
		if err != nil {
			return nil, err
		}
		edgeRecord, err := edgeResult.Single(ctx)
		if err != nil {
			return nil, err
		}
		routeCount, _ := edgeRecord.Get("count")

		return &Stats{
			AirportCount: airportCount.(int64),
			RouteCount:   routeCount.(int64),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Stats), nil
}

// InitializeSchema creates the airport code uniqueness constraint, which
// also creates the lookup index.
func (c *Client) InitializeSchema(ctx context.Context) error {
	_, err := c.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			CREATE CONSTRAINT airport_code_unique IF NOT EXISTS
			FOR (a:Airport) REQUIRE a.code IS UNIQUE
		`
		_, err := tx.Run(ctx, query, nil)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// ClearDatabase deletes all nodes and relationships (use with caution!)
func (c *Client) ClearDatabase(ctx context.Context) error {
	_, err := c.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		_, err := tx.Run(ctx, `MATCH (n) DETACH DELETE n`, nil)
		return nil, err
	})
	return err
}
