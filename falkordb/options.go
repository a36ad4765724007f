package falkordb

import (
	"time"

	"go.uber.org/zap"
)

// Options configures the FalkorDB connection.
type Options struct {
	// Addr is the FalkorDB server address in "host:port" format.
	// Default: "localhost:6379"
	Addr string

	// Password for Redis authentication.
	Password string

	// DB is the Redis database number.
	DB int

	// Cluster forces a Redis Cluster connection. When false the client
	// connects standalone and switches to cluster if the server reports it.
	Cluster bool

	// DialTimeout is the timeout for establishing new connections.
	// Default: 5s
	DialTimeout time.Duration

	// ReadTimeout is the timeout for socket reads.
	// Default: 3s
	ReadTimeout time.Duration

	// WriteTimeout is the timeout for socket writes.
	// Default: same as ReadTimeout
	WriteTimeout time.Duration

	// PoolSize is the maximum number of connections in the pool.
	// Default: 10 * runtime.GOMAXPROCS
	PoolSize int

	// Logger receives debug output for each submitted query.
	// Default: no-op
	Logger *zap.Logger
}

func (o *Options) setDefaults() {
	if o.Addr == "" {
		o.Addr = "localhost:6379"
	}
	if o.DialTimeout == 0 {
		o.DialTimeout = 5 * time.Second
	}
	if o.ReadTimeout == 0 {
		o.ReadTimeout = 3 * time.Second
	}
	if o.WriteTimeout == 0 {
		o.WriteTimeout = o.ReadTimeout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// QueryOptions configures a single query execution.
type QueryOptions struct {
	// ReadOnly sends GRAPH.RO_QUERY instead of GRAPH.QUERY.
	ReadOnly bool

	// Timeout is the query timeout in milliseconds. 0 means no timeout.
	Timeout int
}
