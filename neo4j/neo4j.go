// Package neo4j runs built queries against Neo4j.
package neo4j

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"go.uber.org/zap"

	"github.com/flancast90/cypherbuilder"
)

// ErrMissingURI is returned when Config.URI is empty.
var ErrMissingURI = errors.New("neo4j: uri is required")

var _ cypherbuilder.Runner = (*Database)(nil)

// Config holds Neo4j connection settings.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
	ReadOnly bool
	Logger   *zap.Logger
}

// Database submits queries through a Neo4j driver.
type Database struct {
	driver neo4j.DriverWithContext
	cfg    Config
	logger *zap.Logger
}

// New creates a driver and verifies connectivity.
func New(ctx context.Context, cfg Config) (*Database, error) {
	if cfg.URI == "" {
		return nil, ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if cfg.Username != "" {
		auth = neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("neo4j: failed to create driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j: failed to connect: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Database{driver: driver, cfg: cfg, logger: logger}, nil
}

// Run executes query in a fresh session and returns one map per record.
// Nodes and relationships are reduced to their property maps.
func (d *Database) Run(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	session := d.driver.NewSession(ctx, d.sessionConfig())
	defer session.Close(ctx)

	d.logger.Debug("submitting query", zap.String("query", query), zap.Int("params", len(params)))

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("neo4j: query execution failed: %w", err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("neo4j: failed to collect results: %w", err)
	}

	rows := make([]map[string]interface{}, len(records))
	for i, record := range records {
		rows[i] = recordToRow(record.Keys, record.Values)
	}

	d.logger.Debug("query complete", zap.Int("rows", len(rows)))
	return rows, nil
}

// Close releases the driver.
func (d *Database) Close(ctx context.Context) error {
	if err := d.driver.Close(ctx); err != nil {
		return fmt.Errorf("neo4j: failed to close driver: %w", err)
	}
	return nil
}

func (d *Database) sessionConfig() neo4j.SessionConfig {
	cfg := neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite}
	if d.cfg.ReadOnly {
		cfg.AccessMode = neo4j.AccessModeRead
	}
	if d.cfg.Database != "" {
		cfg.DatabaseName = d.cfg.Database
	}
	return cfg
}

func recordToRow(keys []string, values []interface{}) map[string]interface{} {
	row := make(map[string]interface{}, len(keys))
	for i, key := range keys {
		if i < len(values) {
			row[key] = entityValue(values[i])
		}
	}
	return row
}

func entityValue(v interface{}) interface{} {
	switch val := v.(type) {
	case dbtype.Node:
		return val.Props
	case dbtype.Relationship:
		return val.Props
	default:
		return v
	}
}
