// Package plan describes queries as YAML documents that replay onto a
// cypherbuilder.QueryBuilder.
//
//	steps:
//	  - match:
//	      label: Person
//	      data:
//	        name: Tom Hanks
//	  - link:
//	      direction: forward
//	      relations: ":ACTED_IN"
//	      label: Movie
//	limit: 5
package plan

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flancast90/cypherbuilder"
)

// ErrInvalidStep is returned for a step that sets neither or both of match and link.
var ErrInvalidStep = errors.New("plan: step must set exactly one of match or link")

// Plan is a sequence of builder calls plus RETURN options.
type Plan struct {
	Steps  []Step                 `yaml:"steps"`
	Limit  interface{}            `yaml:"limit,omitempty"`
	Params map[string]interface{} `yaml:"params,omitempty"`
}

// Step is one builder call.
type Step struct {
	Match *MatchStep `yaml:"match,omitempty"`
	Link  *LinkStep  `yaml:"link,omitempty"`
}

// MatchStep maps to QueryBuilder.Match.
type MatchStep struct {
	Label string     `yaml:"label,omitempty"`
	Data  Properties `yaml:"data,omitempty"`
}

// LinkStep maps to QueryBuilder.LinkDirected.
type LinkStep struct {
	Direction string `yaml:"direction,omitempty"`
	Relations string `yaml:"relations,omitempty"`
	Label     string `yaml:"label,omitempty"`
}

// Properties decodes a YAML mapping keeping the document's key order.
type Properties cypherbuilder.Properties

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("plan: line %d: data must be a mapping", node.Line)
	}

	props := make(Properties, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value interface{}
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("plan: line %d: %w", node.Content[i+1].Line, err)
		}
		props = append(props, cypherbuilder.Property{Key: node.Content[i].Value, Value: value})
	}
	*p = props
	return nil
}

// Load reads and parses the plan file at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML plan and checks every step's shape.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks step shapes, directions and relationship types without
// building anything.
func (p *Plan) Validate() error {
	var errs []error
	for i, step := range p.Steps {
		switch {
		case (step.Match == nil) == (step.Link == nil):
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, ErrInvalidStep))
		case step.Link != nil:
			if _, err := cypherbuilder.ParseDirection(step.Link.Direction); err != nil {
				errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
			}
			if err := cypherbuilder.ValidateRelations(step.Link.Relations); err != nil {
				errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Apply validates the plan and replays its steps onto qb.
// An invalid plan leaves qb untouched.
func (p *Plan) Apply(qb *cypherbuilder.QueryBuilder) (*cypherbuilder.QueryBuilder, error) {
	if err := p.Validate(); err != nil {
		return qb, err
	}

	for _, step := range p.Steps {
		if step.Match != nil {
			qb.Match(cypherbuilder.NodeOptions{
				Label: step.Match.Label,
				Data:  cypherbuilder.Properties(step.Match.Data),
			})
			continue
		}

		dir, err := cypherbuilder.ParseDirection(step.Link.Direction)
		if err != nil {
			return qb, err
		}
		qb.LinkDirected(dir, cypherbuilder.LinkOptions{
			Relations:     step.Link.Relations,
			RelationLabel: step.Link.Label,
		})
	}
	return qb, qb.Err()
}

// Build applies the plan to a new builder and returns the finished query.
func (p *Plan) Build() (string, error) {
	qb, err := p.Apply(cypherbuilder.New())
	if err != nil {
		return "", err
	}
	return qb.Build(cypherbuilder.BuildOptions{Limit: p.Limit})
}
