// Package bench runs vector allocation workloads described in YAML.
//
// A workload is a list of scenarios. Each scenario builds a vector, clones
// it, mutates every clone and checks that the original never observed the
// writes. The interesting output is the vec stats delta, not the timing.
package bench

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/kolkov/socow/vec"
)

// Errors returned by workload loading and validation.
var (
	ErrInvalidWorkload = errors.New("bench: invalid workload")
	ErrCorrupted       = errors.New("bench: clone mutation leaked into original")
)

// InlineSizes lists the inline capacities a scenario may select.
var InlineSizes = []int{1, 2, 4, 8, 16, 32, 64}

// Scenario is one workload entry.
type Scenario struct {
	// Name identifies the scenario in logs and reports.
	Name string `yaml:"name"`

	// Inline is the inline capacity N of the vectors, one of InlineSizes.
	Inline int `yaml:"inline"`

	// Elements is how many elements the source vector is built with.
	Elements int `yaml:"elements"`

	// Clones is how many clones are taken of the source per iteration.
	Clones int `yaml:"clones"`

	// Mutations is how many writes each clone receives.
	Mutations int `yaml:"mutations"`

	// Iterations repeats the build, clone and mutate cycle.
	Iterations int `yaml:"iterations"`
}

// Workload is the top level of a workload file.
type Workload struct {
	// Requires is the minimum library version, e.g. "v0.1.0". Optional.
	Requires string `yaml:"requires"`

	Scenarios []Scenario `yaml:"scenarios"`
}

// Default returns the workload run when no file is given. It covers
// vectors that stay inline, that spill once and that live on the heap.
func Default() *Workload {
	return &Workload{
		Requires: vec.Version,
		Scenarios: []Scenario{
			{Name: "inline-only", Inline: 8, Elements: 8, Clones: 4, Mutations: 4, Iterations: 1000},
			{Name: "spill", Inline: 4, Elements: 5, Clones: 4, Mutations: 2, Iterations: 1000},
			{Name: "read-mostly", Inline: 16, Elements: 256, Clones: 16, Mutations: 0, Iterations: 200},
			{Name: "write-heavy", Inline: 2, Elements: 64, Clones: 8, Mutations: 32, Iterations: 200},
		},
	}
}

// Parse decodes a workload and validates it. Unknown keys are rejected.
func Parse(data []byte) (*Workload, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var w Workload
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkload, err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// Load reads and parses the workload file at path.
func Load(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload: %w", err)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Validate checks the version requirement and every scenario.
func (w *Workload) Validate() error {
	if w.Requires != "" {
		if err := vec.CheckVersion(w.Requires); err != nil {
			return err
		}
	}
	if len(w.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidWorkload)
	}
	seen := make(map[string]bool, len(w.Scenarios))
	for i, s := range w.Scenarios {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenario %d: %w", i, err)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate scenario %q", ErrInvalidWorkload, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Validate checks a single scenario.
func (s Scenario) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidWorkload)
	case !slices.Contains(InlineSizes, s.Inline):
		return fmt.Errorf("%w: %s: inline must be one of %v, got %d",
			ErrInvalidWorkload, s.Name, InlineSizes, s.Inline)
	case s.Elements < 1:
		return fmt.Errorf("%w: %s: elements must be positive", ErrInvalidWorkload, s.Name)
	case s.Clones < 0, s.Mutations < 0:
		return fmt.Errorf("%w: %s: clones and mutations must not be negative", ErrInvalidWorkload, s.Name)
	case s.Iterations < 1:
		return fmt.Errorf("%w: %s: iterations must be positive", ErrInvalidWorkload, s.Name)
	}
	return nil
}
