// Package cypherbuilder assembles Cypher MATCH ... RETURN statements from
// chained method calls instead of string concatenation.
//
// # Quick Start
//
//	qb := cypherbuilder.New()
//	query, err := qb.
//		Match(cypherbuilder.NodeOptions{Label: "Person"}).
//		Link(cypherbuilder.LinkOptions{Relations: ":ACTED_IN", RelationLabel: "Movie"}).
//		Build(cypherbuilder.BuildOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	// MATCH (label1:Person)-[relation1:ACTED_IN]-(label2:Movie) RETURN relation1, label1, label2
//
// # Variables
//
// Every [QueryBuilder.Match] introduces one node variable. Every link call
// introduces one relationship variable and one node variable. Names are
// generated as label1, label2, ... and relation1, relation2, ... and are
// never reused. [QueryBuilder.Build] returns all relationship variables
// followed by all node variables.
//
// # Links
//
//   - [QueryBuilder.Link]: -[r]-(n)
//   - [QueryBuilder.LinkForward]: -[r]->(n)
//   - [QueryBuilder.LinkBackward]: <-[r]-(n)
//
// Relationship types must look like ":TYPE" or ":TYPE1|TYPE2". Anything
// else is rejected with [ErrInvalidParameter], which surfaces from
// [QueryBuilder.Err] and [QueryBuilder.Build].
//
// # Escaping
//
// Labels, property values and limits are written verbatim. Do not pass
// untrusted input through [NodeOptions]; use query parameters with a
// [Runner] instead.
//
// # Running Queries
//
// The falkordb and neo4j subpackages provide [Runner] implementations.
//
// # Thread Safety
//
// A QueryBuilder is not safe for concurrent use. Create one per query.
package cypherbuilder
