// Package baseline defines named expected proportions that observed hit
// rates are tested against.
package baseline

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Baseline pairs a label with an expected hit proportion.
type Baseline struct {
	Label string  `yaml:"label"`
	P0    float64 `yaml:"p0"`
}

// ParseSpec parses a "label:proportion" flag value, e.g. "rock:0.02".
func ParseSpec(spec string) (Baseline, error) {
	label, val, ok := strings.Cut(spec, ":")
	if !ok || label == "" {
		return Baseline{}, fmt.Errorf("baseline %q: want label:proportion", spec)
	}
	p0, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return Baseline{}, fmt.Errorf("baseline %q: %w", spec, err)
	}
	if p0 < 0 || p0 > 1 {
		return Baseline{}, fmt.Errorf("baseline %q: proportion must be in [0,1]", spec)
	}
	return Baseline{Label: label, P0: p0}, nil
}

type baselineFile struct {
	Baselines []Baseline `yaml:"baselines"`
}

// LoadFile reads named baselines from a YAML file of the form:
//
//	baselines:
//	  - label: rock
//	    p0: 0.02
func LoadFile(path string) ([]Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baselines: %w", err)
	}
	var f baselineFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse baselines %s: %w", path, err)
	}
	for _, b := range f.Baselines {
		if b.Label == "" {
			return nil, fmt.Errorf("baselines %s: entry with empty label", path)
		}
		if b.P0 < 0 || b.P0 > 1 {
			return nil, fmt.Errorf("baselines %s: %q proportion must be in [0,1]", path, b.Label)
		}
	}
	return f.Baselines, nil
}
