// Package config loads connection settings for the cypherbuild CLI.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names.
const (
	BackendFalkorDB = "falkordb"
	BackendNeo4j    = "neo4j"
)

var (
	// ErrNoBackend is returned when neither falkordb nor neo4j is configured.
	ErrNoBackend = errors.New("config: no database configured")

	// ErrMultipleBackends is returned when both falkordb and neo4j are configured,
	// whether by the file, the environment or a mix of the two.
	ErrMultipleBackends = errors.New("config: both falkordb and neo4j configured")
)

// Config is the cypherbuild.yaml file.
//
// Exactly one database section must be set. Its presence selects the backend.
type Config struct {
	FalkorDB *FalkorDBConfig `yaml:"falkordb,omitempty"`
	Neo4j    *Neo4jConfig    `yaml:"neo4j,omitempty"`
}

// FalkorDBConfig holds FalkorDB connection settings.
type FalkorDBConfig struct {
	Addr     string        `yaml:"addr,omitempty"`
	Password string        `yaml:"password,omitempty"`
	DB       int           `yaml:"db,omitempty"`
	Graph    string        `yaml:"graph,omitempty"`
	Cluster  bool          `yaml:"cluster,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// Neo4jConfig holds Neo4j connection settings.
type Neo4jConfig struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	Database string `yaml:"database,omitempty"`
}

// Load reads the file at path, applies environment overrides and defaults.
// A missing file is not an error when the environment configures a backend.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if cfg, err = Parse(data); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML configuration without applying the environment.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks that exactly one backend is configured.
func (c *Config) Validate() error {
	switch {
	case c.FalkorDB != nil && c.Neo4j != nil:
		return ErrMultipleBackends
	case c.Backend() == "":
		return ErrNoBackend
	default:
		return nil
	}
}

// Backend returns the configured backend name, or "" if none.
func (c *Config) Backend() string {
	switch {
	case c.FalkorDB != nil:
		return BackendFalkorDB
	case c.Neo4j != nil:
		return BackendNeo4j
	default:
		return ""
	}
}

// applyEnv overlays FALKORDB_HOST/FALKORDB_PORT and NEO4J_URI/USERNAME/PASSWORD.
func (c *Config) applyEnv() {
	host, port := os.Getenv("FALKORDB_HOST"), os.Getenv("FALKORDB_PORT")
	if host != "" || port != "" {
		if c.FalkorDB == nil {
			c.FalkorDB = &FalkorDBConfig{}
		}
		if host == "" {
			host = "localhost"
		}
		if port == "" {
			port = "6379"
		}
		c.FalkorDB.Addr = net.JoinHostPort(host, port)
	}

	if uri := os.Getenv("NEO4J_URI"); uri != "" {
		if c.Neo4j == nil {
			c.Neo4j = &Neo4jConfig{}
		}
		c.Neo4j.URI = uri
	}
	if c.Neo4j != nil {
		if user := os.Getenv("NEO4J_USERNAME"); user != "" {
			c.Neo4j.Username = user
		}
		if pass := os.Getenv("NEO4J_PASSWORD"); pass != "" {
			c.Neo4j.Password = pass
		}
	}
}

func (c *Config) setDefaults() {
	if c.FalkorDB != nil {
		if c.FalkorDB.Addr == "" {
			c.FalkorDB.Addr = "localhost:6379"
		}
		if c.FalkorDB.Graph == "" {
			c.FalkorDB.Graph = "default"
		}
	}
	if c.Neo4j != nil && c.Neo4j.URI == "" {
		c.Neo4j.URI = "neo4j://localhost:7687"
	}
}
