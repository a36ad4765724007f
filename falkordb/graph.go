// Package falkordb runs built queries against FalkorDB over go-redis.
package falkordb

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/flancast90/cypherbuilder"
	"github.com/flancast90/cypherbuilder/internal/proto"
	"github.com/flancast90/cypherbuilder/internal/redis"
)

var _ cypherbuilder.Runner = (*Graph)(nil)

// Graph submits queries to one named FalkorDB graph.
// It is safe for concurrent use by multiple goroutines.
type Graph struct {
	name    string
	client  redis.Client
	logger  *zap.Logger
	options QueryOptions
}

// Connect opens a connection and selects the named graph.
// The graph does not need to exist; FalkorDB creates it on first write.
//
// Example:
//
//	g, err := falkordb.Connect(ctx, "movies", &falkordb.Options{Addr: "localhost:6379"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer g.Close()
func Connect(ctx context.Context, graph string, opts *Options) (*Graph, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.setDefaults()

	mode := redis.ModeAuto
	if opts.Cluster {
		mode = redis.ModeCluster
	}

	client, err := redis.NewClient(ctx, &redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		Mode:         mode,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("falkordb: connect %s: %w", opts.Addr, err)
	}

	return newGraph(graph, client, opts.Logger), nil
}

func newGraph(name string, client redis.Client, logger *zap.Logger) *Graph {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Graph{
		name:   name,
		client: client,
		logger: logger.With(zap.String("graph", name)),
	}
}

// Name returns the name of the graph.
func (g *Graph) Name() string {
	return g.name
}

// WithQueryOptions returns a copy of g that applies opts to every Run.
func (g *Graph) WithQueryOptions(opts QueryOptions) *Graph {
	clone := *g
	clone.options = opts
	return &clone
}

// Run executes query with params and returns one map per row, keyed by
// RETURN column name.
func (g *Graph) Run(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	cmd := "GRAPH.QUERY"
	if g.options.ReadOnly {
		cmd = "GRAPH.RO_QUERY"
	}

	args := proto.BuildQueryArgs(cmd, g.name, query, params, g.options.Timeout)
	g.logger.Debug("submitting query",
		zap.String("command", cmd),
		zap.String("query", query),
		zap.Int("params", len(params)),
	)

	result, err := g.client.Do(ctx, args...).Result()
	if err != nil {
		return nil, fmt.Errorf("falkordb: %s: %w", cmd, err)
	}

	raw, err := proto.ParseResult(result)
	if err != nil {
		return nil, fmt.Errorf("falkordb: %w", err)
	}

	g.logger.Debug("query complete",
		zap.Int("rows", len(raw.Data)),
		zap.Any("stats", raw.Stats()),
	)
	return raw.Rows(), nil
}

// Delete removes the graph from the database.
func (g *Graph) Delete(ctx context.Context) error {
	return g.client.Do(ctx, "GRAPH.DELETE", g.name).Err()
}

// Ping verifies the connection is alive.
func (g *Graph) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}

// Close closes the underlying connection.
func (g *Graph) Close() error {
	return g.client.Close()
}
