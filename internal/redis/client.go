// Package redis opens the Redis connections used by the FalkorDB runner.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis used to submit graph queries.
type Client interface {
	Do(ctx context.Context, args ...interface{}) *redis.Cmd
	Close() error
	Ping(ctx context.Context) *redis.StatusCmd
}

// Mode selects how the connection is established.
type Mode string

const (
	// ModeAuto connects standalone and switches to cluster when the server
	// reports cluster mode.
	ModeAuto Mode = ""

	ModeStandalone Mode = "standalone"
	ModeCluster    Mode = "cluster"
)

// Options configures the Redis connection.
type Options struct {
	Addr         string
	Password     string
	DB           int
	Mode         Mode
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
}

// NewClient connects and verifies the connection with PING.
func NewClient(ctx context.Context, opts *Options) (Client, error) {
	switch opts.Mode {
	case ModeCluster:
		return newClusterClient(ctx, opts)
	case ModeStandalone, ModeAuto:
	default:
		return nil, fmt.Errorf("unknown connection mode %q", opts.Mode)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	if opts.Mode == ModeAuto && isCluster(ctx, client) {
		client.Close()
		return newClusterClient(ctx, opts)
	}

	return client, nil
}

// isCluster reports whether the server has cluster support enabled.
// Standalone servers answer CLUSTER INFO with an error.
func isCluster(ctx context.Context, client *redis.Client) bool {
	info, err := client.ClusterInfo(ctx).Result()
	return err == nil && info != ""
}

func newClusterClient(ctx context.Context, opts *Options) (Client, error) {
	client := redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:        []string{opts.Addr},
		Password:     opts.Password,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
