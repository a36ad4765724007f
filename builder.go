package cypherbuilder

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	nodePrefix     = "label"
	relationPrefix = "relation"
)

// relationsPattern accepts ":TYPE" optionally followed by "|TYPE" or "|:TYPE" alternates.
var relationsPattern = regexp.MustCompile(`^:\w+((\|:?\w+)+?)?$`)

// QueryBuilder assembles a Cypher MATCH ... RETURN statement.
//
// Each chained call appends a fragment to the query text and registers the
// variables it introduces. Node variables are named label1, label2, ... and
// relationship variables relation1, relation2, ... in call order.
//
// A QueryBuilder is not safe for concurrent use.
type QueryBuilder struct {
	query     strings.Builder
	nodes     *varSet
	relations *varSet
	errs      []error
}

// New returns an empty QueryBuilder.
func New() *QueryBuilder {
	return &QueryBuilder{
		nodes:     newVarSet(),
		relations: newVarSet(),
	}
}

// Match appends a MATCH clause for a new node.
//
// Example:
//
//	qb.Match(cypherbuilder.NodeOptions{
//		Label: "Person",
//		Data:  cypherbuilder.Props("name", "Tom Hanks"),
//	})
//	// MATCH (label1:Person {name:'Tom Hanks'})
//
// Label and Data are written verbatim.
func (qb *QueryBuilder) Match(opts NodeOptions) *QueryBuilder {
	variable := qb.nextNode()

	if qb.query.Len() > 0 {
		qb.query.WriteString(", ")
	}
	qb.query.WriteString("MATCH (")
	qb.query.WriteString(variable)
	if opts.Label != "" {
		qb.query.WriteString(":")
		qb.query.WriteString(opts.Label)
	}
	qb.query.WriteString(opts.Data.clause())
	qb.query.WriteString(")")

	qb.nodes.Add(variable)
	return qb
}

// Link appends an undirected relationship from the last node to a new node:
// -[relationN:TYPE]-(labelM:Label).
func (qb *QueryBuilder) Link(opts LinkOptions) *QueryBuilder {
	return qb.LinkDirected(DirectionBoth, opts)
}

// LinkForward appends a relationship pointing at the new node:
// -[relationN:TYPE]->(labelM:Label).
func (qb *QueryBuilder) LinkForward(opts LinkOptions) *QueryBuilder {
	return qb.LinkDirected(DirectionForward, opts)
}

// LinkBackward appends a relationship pointing away from the new node:
// <-[relationN:TYPE]-(labelM:Label).
func (qb *QueryBuilder) LinkBackward(opts LinkOptions) *QueryBuilder {
	return qb.LinkDirected(DirectionBackward, opts)
}

// LinkDirected appends a relationship in the given direction.
//
// If opts.Relations is set and is not a valid relationship-type expression
// the builder is left unchanged and the error is recorded; it is returned
// by Err and Build.
func (qb *QueryBuilder) LinkDirected(dir Direction, opts LinkOptions) *QueryBuilder {
	if err := ValidateRelations(opts.Relations); err != nil {
		qb.errs = append(qb.errs, err)
		return qb
	}

	node := qb.nextNode()
	relation := qb.nextRelation()

	left, right := dir.arrows()
	qb.query.WriteString(left)
	qb.query.WriteString("[")
	qb.query.WriteString(relation)
	qb.query.WriteString(strings.ToUpper(opts.Relations))
	qb.query.WriteString("]")
	qb.query.WriteString(right)
	qb.query.WriteString("(")
	qb.query.WriteString(node)
	if opts.RelationLabel != "" {
		qb.query.WriteString(":")
		qb.query.WriteString(opts.RelationLabel)
	}
	qb.query.WriteString(")")

	qb.relations.Add(relation)
	qb.nodes.Add(node)
	return qb
}

// Build appends the RETURN clause and returns the finished query.
//
// All relationship variables are returned first, then all node variables.
// When opts.Limit is set a LIMIT clause follows the last variable.
// If an earlier call recorded an error, Build returns it and leaves the
// query untouched.
//
// Build is not idempotent: a second call appends another RETURN clause.
func (qb *QueryBuilder) Build(opts BuildOptions) (string, error) {
	if err := qb.Err(); err != nil {
		return "", err
	}

	variables := qb.Variables()
	qb.query.WriteString(" RETURN")
	for i, v := range variables {
		if i > 0 {
			qb.query.WriteString(",")
		}
		qb.query.WriteString(" ")
		qb.query.WriteString(v)
		if i == len(variables)-1 && opts.hasLimit() {
			fmt.Fprintf(&qb.query, " LIMIT %v", opts.Limit)
		}
	}

	return qb.Query(), nil
}

// Query returns the text assembled so far.
func (qb *QueryBuilder) Query() string {
	return qb.query.String()
}

// String returns the text assembled so far.
func (qb *QueryBuilder) String() string {
	return qb.Query()
}

// Variables returns the relationship variables followed by the node
// variables, in the order RETURN lists them.
func (qb *QueryBuilder) Variables() []string {
	return append(qb.relations.Values(), qb.nodes.Values()...)
}

// Err returns the errors recorded by rejected Link calls, or nil.
func (qb *QueryBuilder) Err() error {
	return errors.Join(qb.errs...)
}

// ValidateRelations reports whether relations is a usable relationship-type
// expression such as ":ACTED_IN" or ":ACTED_IN|:DIRECTED". The empty string
// is valid and means "any type".
func ValidateRelations(relations string) error {
	if relations == "" || relationsPattern.MatchString(relations) {
		return nil
	}
	return fmt.Errorf("%w: relations %q", ErrInvalidParameter, relations)
}

func (qb *QueryBuilder) nextNode() string {
	return fmt.Sprintf("%s%d", nodePrefix, qb.nodes.Len()+1)
}

func (qb *QueryBuilder) nextRelation() string {
	return fmt.Sprintf("%s%d", relationPrefix, qb.relations.Len()+1)
}
