package cypherbuilder

import "context"

// Runner executes a finished query against a graph database.
//
// Implementations live in the falkordb and neo4j packages.
type Runner interface {
	Run(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error)
}

// BuildAndRun builds qb and passes the result to r.
func BuildAndRun(ctx context.Context, r Runner, qb *QueryBuilder, opts BuildOptions, params map[string]interface{}) ([]map[string]interface{}, error) {
	query, err := qb.Build(opts)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, query, params)
}
