package fuzzcheck

import (
	"fmt"

	"github.com/coreseekdev/delta/pkg/delta"
	"gopkg.in/yaml.v3"
)

// yamlOp is one op in a scenario fixture's YAML shorthand: exactly one of
// Insert/Retain/Delete is set, and Bold optionally tags a Retain or Insert
// with a LastWriteWins[bool] attribute.
type yamlOp struct {
	Insert string `yaml:"insert,omitempty"`
	Retain int    `yaml:"retain,omitempty"`
	Delete int    `yaml:"delete,omitempty"`
	Bold   *bool  `yaml:"bold,omitempty"`
}

// Scenario is a named regression fixture: a base document and two
// concurrently-derived deltas whose convergence TestConvergenceScenarios
// verifies.
type Scenario struct {
	Name string   `yaml:"name"`
	Base string   `yaml:"base"`
	A    []yamlOp `yaml:"a"`
	B    []yamlOp `yaml:"b"`
}

// LoadScenarios parses a scenarios fixture file.
func LoadScenarios(data []byte) ([]Scenario, error) {
	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fuzzcheck: parsing scenarios: %w", err)
	}
	return doc.Scenarios, nil
}

// build compiles a []yamlOp into a Delta[string, LastWriteWins[bool]].
func build(ops []yamlOp) *delta.Delta[string, delta.LastWriteWins[bool]] {
	d := delta.NewDelta[string, delta.LastWriteWins[bool]](delta.StringSeq{})
	for _, o := range ops {
		attrs := delta.None[delta.LastWriteWins[bool]]()
		if o.Bold != nil {
			attrs = delta.Some(delta.LastWriteWins[bool]{Value: *o.Bold})
		}
		switch {
		case o.Insert != "":
			d.Insert(o.Insert, attrs)
		case o.Retain > 0:
			d.Retain(o.Retain, attrs)
		case o.Delete > 0:
			d.Delete(o.Delete)
		}
	}
	return d
}

// BuildA compiles the scenario's A delta.
func (s Scenario) BuildA() *delta.Delta[string, delta.LastWriteWins[bool]] { return build(s.A) }

// BuildB compiles the scenario's B delta.
func (s Scenario) BuildB() *delta.Delta[string, delta.LastWriteWins[bool]] { return build(s.B) }
