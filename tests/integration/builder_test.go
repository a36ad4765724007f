// Package integration runs built queries against a live FalkorDB.
// These tests require a running FalkorDB instance and skip otherwise.
//
// Run with: go test -v ./tests/integration/...
package integration

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/flancast90/cypherbuilder"
	"github.com/flancast90/cypherbuilder/falkordb"
)

func randomName() string {
	return fmt.Sprintf("test_%d", rand.Intn(999999))
}

func newTestGraph(t *testing.T) *falkordb.Graph {
	t.Helper()

	host := os.Getenv("FALKORDB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("FALKORDB_PORT")
	if port == "" {
		port = "6379"
	}

	ctx := context.Background()
	g, err := falkordb.Connect(ctx, randomName(), &falkordb.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
	})
	if err != nil {
		t.Skipf("FalkorDB not available at %s:%s: %v", host, port, err)
	}

	t.Cleanup(func() {
		g.Delete(ctx)
		g.Close()
	})
	return g
}

func seed(t *testing.T, g *falkordb.Graph) {
	t.Helper()

	_, err := g.Run(context.Background(), `
		CREATE (tom:Person {name: 'Tom Hanks'})
		CREATE (meg:Person {name: 'Meg Ryan'})
		CREATE (ron:Person {name: 'Ron Howard'})
		CREATE (big:Movie {title: 'Big'})
		CREATE (sleepless:Movie {title: 'Sleepless in Seattle'})
		CREATE (apollo:Movie {title: 'Apollo 13'})
		CREATE (tom)-[:ACTED_IN]->(big)
		CREATE (tom)-[:ACTED_IN]->(sleepless)
		CREATE (meg)-[:ACTED_IN]->(sleepless)
		CREATE (tom)-[:ACTED_IN]->(apollo)
		CREATE (ron)-[:DIRECTED]->(apollo)
	`, nil)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
}

// =============================================================================
// Match Tests
// =============================================================================

func TestMatch(t *testing.T) {
	g := newTestGraph(t)
	seed(t, g)
	ctx := context.Background()

	t.Run("ByLabel", func(t *testing.T) {
		qb := cypherbuilder.New().Match(cypherbuilder.NodeOptions{Label: "Movie"})
		rows, err := cypherbuilder.BuildAndRun(ctx, g, qb, cypherbuilder.BuildOptions{}, nil)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(rows) != 3 {
			t.Errorf("Expected 3 movies, got %d", len(rows))
		}
	})

	t.Run("ByProperty", func(t *testing.T) {
		qb := cypherbuilder.New().Match(cypherbuilder.NodeOptions{
			Label: "Person",
			Data:  cypherbuilder.Props("name", "Tom Hanks"),
		})
		rows, err := cypherbuilder.BuildAndRun(ctx, g, qb, cypherbuilder.BuildOptions{}, nil)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(rows) != 1 {
			t.Errorf("Expected 1 row, got %d", len(rows))
		}
	})

	t.Run("Limit", func(t *testing.T) {
		qb := cypherbuilder.New().Match(cypherbuilder.NodeOptions{})
		rows, err := cypherbuilder.BuildAndRun(ctx, g, qb, cypherbuilder.BuildOptions{Limit: 2}, nil)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(rows) != 2 {
			t.Errorf("Expected 2 rows, got %d", len(rows))
		}
	})
}

// =============================================================================
// Link Tests
// =============================================================================

func TestLinks(t *testing.T) {
	g := newTestGraph(t)
	seed(t, g)
	ctx := context.Background()

	tom := cypherbuilder.NodeOptions{Label: "Person", Data: cypherbuilder.Props("name", "Tom Hanks")}

	t.Run("Forward", func(t *testing.T) {
		qb := cypherbuilder.New().
			Match(tom).
			LinkForward(cypherbuilder.LinkOptions{Relations: ":ACTED_IN", RelationLabel: "Movie"})
		rows, err := cypherbuilder.BuildAndRun(ctx, g, qb, cypherbuilder.BuildOptions{}, nil)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(rows) != 3 {
			t.Errorf("Expected 3 rows, got %d", len(rows))
		}
		for _, row := range rows {
			for _, col := range []string{"relation1", "label1", "label2"} {
				if _, ok := row[col]; !ok {
					t.Errorf("Expected column %s in %v", col, row)
				}
			}
		}
	})

	t.Run("Backward", func(t *testing.T) {
		qb := cypherbuilder.New().
			Match(tom).
			LinkForward(cypherbuilder.LinkOptions{Relations: ":ACTED_IN", RelationLabel: "Movie"}).
			LinkBackward(cypherbuilder.LinkOptions{Relations: ":ACTED_IN", RelationLabel: "Person"})
		rows, err := cypherbuilder.BuildAndRun(ctx, g, qb, cypherbuilder.BuildOptions{}, nil)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		// Meg Ryan in Sleepless in Seattle.
		if len(rows) != 1 {
			t.Errorf("Expected 1 co-actor row, got %d", len(rows))
		}
	})

	t.Run("Alternation", func(t *testing.T) {
		qb := cypherbuilder.New().
			Match(cypherbuilder.NodeOptions{Label: "Person"}).
			LinkForward(cypherbuilder.LinkOptions{Relations: ":ACTED_IN|:DIRECTED", RelationLabel: "Movie"})
		rows, err := cypherbuilder.BuildAndRun(ctx, g, qb, cypherbuilder.BuildOptions{}, nil)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(rows) != 5 {
			t.Errorf("Expected 5 rows, got %d", len(rows))
		}
	})

	t.Run("ReadOnly", func(t *testing.T) {
		ro := g.WithQueryOptions(falkordb.QueryOptions{ReadOnly: true})
		qb := cypherbuilder.New().Match(cypherbuilder.NodeOptions{Label: "Movie"})
		if _, err := cypherbuilder.BuildAndRun(ctx, ro, qb, cypherbuilder.BuildOptions{}, nil); err != nil {
			t.Fatalf("Read-only run failed: %v", err)
		}
	})
}
