// Package main provides the cypherbuild CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/flancast90/cypherbuilder"
	"github.com/flancast90/cypherbuilder/config"
	"github.com/flancast90/cypherbuilder/falkordb"
	"github.com/flancast90/cypherbuilder/neo4j"
	"github.com/flancast90/cypherbuilder/plan"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cypherbuild",
		Short: "Build Cypher MATCH queries from YAML plans",
		Long: `cypherbuild turns a YAML query plan into a Cypher MATCH ... RETURN
statement and optionally runs it against FalkorDB or Neo4j.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cypherbuild v%s (%s)\n", version, commit)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "build <plan.yaml>",
		Short: "Print the query for a plan",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "validate <plan.yaml>...",
		Short: "Check plans without building them",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	})

	runCmd := &cobra.Command{
		Use:   "run <plan.yaml>",
		Short: "Build a plan and execute it",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}
	runCmd.Flags().StringP("config", "c", "cypherbuild.yaml", "Connection config file")
	runCmd.Flags().Bool("read-only", false, "Submit as a read-only query")
	rootCmd.AddCommand(runCmd)

	return rootCmd
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func runBuild(cmd *cobra.Command, args []string) error {
	p, err := plan.Load(args[0])
	if err != nil {
		return err
	}

	query, err := p.Build()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), query)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	failed := 0
	for _, path := range args {
		if _, err := plan.Load(path); err != nil {
			logger.Error("invalid plan", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}
		logger.Debug("plan ok", zap.String("path", path))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d plans invalid", failed, len(args))
	}
	return nil
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	p, err := plan.Load(args[0])
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	readOnly, _ := cmd.Flags().GetBool("read-only")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, closeRunner, err := openRunner(ctx, cfg, readOnly, logger)
	if err != nil {
		return err
	}
	defer closeRunner()

	qb, err := p.Apply(cypherbuilder.New())
	if err != nil {
		return err
	}
	rows, err := cypherbuilder.BuildAndRun(ctx, runner, qb, cypherbuilder.BuildOptions{Limit: p.Limit}, p.Params)
	if err != nil {
		return err
	}
	logger.Info("query complete",
		zap.String("backend", cfg.Backend()),
		zap.String("query", qb.Query()),
		zap.Int("rows", len(rows)),
	)
	return writeRows(cmd.OutOrStdout(), rows)
}

func openRunner(ctx context.Context, cfg *config.Config, readOnly bool, logger *zap.Logger) (cypherbuilder.Runner, func(), error) {
	switch cfg.Backend() {
	case config.BackendFalkorDB:
		fc := cfg.FalkorDB
		g, err := falkordb.Connect(ctx, fc.Graph, &falkordb.Options{
			Addr:     fc.Addr,
			Password: fc.Password,
			DB:       fc.DB,
			Cluster:  fc.Cluster,
			Logger:   logger,
		})
		if err != nil {
			return nil, nil, err
		}
		g = g.WithQueryOptions(falkordb.QueryOptions{
			ReadOnly: readOnly,
			Timeout:  int(fc.Timeout.Milliseconds()),
		})
		return g, func() { _ = g.Close() }, nil
	case config.BackendNeo4j:
		nc := cfg.Neo4j
		db, err := neo4j.New(ctx, neo4j.Config{
			URI:      nc.URI,
			Username: nc.Username,
			Password: nc.Password,
			Database: nc.Database,
			ReadOnly: readOnly,
			Logger:   logger,
		})
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close(context.Background()) }, nil
	default:
		return nil, nil, config.ErrNoBackend
	}
}

func writeRows(w io.Writer, rows []map[string]interface{}) error {
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
