// Package phase holds the phase-dependency table and resolves relative phase
// values into absolute offsets from navigation start.
package phase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/penwyp/go-perf-waterfall/internal/core/constants"
	"github.com/penwyp/go-perf-waterfall/internal/core/model"
)

// Spec describes a relative phase: its value is a delta from Predecessor
type Spec struct {
	Predecessor string `json:"from" yaml:"from"`
	Color       string `json:"color" yaml:"color"`
}

// Table is an immutable, validated phase-dependency table. Phases absent from
// the table are absolute.
type Table struct {
	specs  map[string]Spec
	depths map[string]int
}

var defaultTable = mustTable(FromRelativePhases(constants.DefaultRelativePhases))

// Default returns the reference table
func Default() *Table {
	return defaultTable
}

func mustTable(t *Table, err error) *Table {
	if err != nil {
		panic(fmt.Sprintf("invalid built-in phase table: %v", err))
	}
	return t
}

// FromRelativePhases builds a table from an ordered list of relative phases
func FromRelativePhases(phases []constants.RelativePhase) (*Table, error) {
	specs := make(map[string]Spec, len(phases))
	for _, p := range phases {
		if _, dup := specs[p.Name]; dup {
			return nil, fmt.Errorf("%w: phase %q defined twice", model.ErrInvalidPhaseSpec, p.Name)
		}
		specs[p.Name] = Spec{Predecessor: p.Predecessor, Color: p.Color}
	}
	return NewTable(specs)
}

// NewTable copies specs and verifies that every predecessor chain ends at an
// absolute phase.
func NewTable(specs map[string]Spec) (*Table, error) {
	t := &Table{
		specs:  make(map[string]Spec, len(specs)),
		depths: make(map[string]int, len(specs)),
	}

	for name, spec := range specs {
		if err := validateName(name); err != nil {
			return nil, err
		}
		if err := validateName(spec.Predecessor); err != nil {
			return nil, fmt.Errorf("phase %q: %w", name, err)
		}
		t.specs[name] = spec
	}

	for _, name := range t.Phases() {
		depth, err := t.walk(name)
		if err != nil {
			return nil, err
		}
		t.depths[name] = depth
	}

	return t, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty phase name", model.ErrInvalidPhaseSpec)
	}
	if strings.Contains(name, constants.KeySeparator) {
		return fmt.Errorf("%w: phase %q contains separator %q", model.ErrInvalidPhaseSpec, name, constants.KeySeparator)
	}
	return nil
}

// walk follows the chain from name and returns the number of relative hops
func (t *Table) walk(name string) (int, error) {
	seen := map[string]bool{name: true}
	chain := []string{name}
	depth := 0

	for current := name; ; {
		spec, ok := t.specs[current]
		if !ok {
			return depth, nil
		}
		depth++
		next := spec.Predecessor
		if seen[next] {
			return 0, fmt.Errorf("%w: %s -> %s", model.ErrCyclicPhase, strings.Join(chain, " -> "), next)
		}
		seen[next] = true
		chain = append(chain, next)
		current = next
	}
}

// Lookup returns the Spec of a relative phase
func (t *Table) Lookup(phase string) (Spec, bool) {
	spec, ok := t.specs[phase]
	return spec, ok
}

// IsRelative reports whether a phase is stored as a delta
func (t *Table) IsRelative(phase string) bool {
	_, ok := t.specs[phase]
	return ok
}

// Depth returns how many relative hops separate phase from its absolute base.
// Absolute phases have depth 0.
func (t *Table) Depth(phase string) int {
	return t.depths[phase]
}

// Base returns the absolute phase a relative chain ends at
func (t *Table) Base(phase string) string {
	current := phase
	for {
		spec, ok := t.specs[current]
		if !ok {
			return current
		}
		current = spec.Predecessor
	}
}

// Phases returns relative phase names, sorted
func (t *Table) Phases() []string {
	names := make([]string, 0, len(t.specs))
	for name := range t.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of relative phases
func (t *Table) Len() int {
	return len(t.specs)
}
