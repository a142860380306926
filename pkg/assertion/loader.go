package assertion

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is a versioned list of definitions as stored on disk.
type Suite struct {
	// Version identifies the file format.
	Version string `json:"version" yaml:"version"`

	// Assertions are the definitions in file order.
	Assertions []Definition `json:"assertions" yaml:"assertions"`
}

// ParseDefinitions decodes a suite from YAML or JSON data. Every
// definition must name a type and a target.
func ParseDefinitions(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parse definitions: %w", err)
	}

	for i, def := range suite.Assertions {
		if def.Type == "" {
			return nil, fmt.Errorf("assertion %d: missing type", i)
		}
		if def.Target == "" {
			return nil, fmt.Errorf(
				"assertion %d (%s): missing target", i, def.Type,
			)
		}
	}
	return &suite, nil
}

// LoadDefinitions reads a suite from a YAML or JSON file.
func LoadDefinitions(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}
	suite, err := ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suite, nil
}

// LoadValues reads a map of named values from a YAML or JSON
// file, for use with EvaluateAll.
func LoadValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%s: parse values: %w", path, err)
	}
	return values, nil
}

// Run evaluates every definition of the suite against values.
func (s *Suite) Run(engine Engine, values map[string]any) []Result {
	return engine.EvaluateAll(s.Assertions, values)
}
