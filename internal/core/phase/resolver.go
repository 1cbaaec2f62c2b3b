package phase

import (
	"errors"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
)

// Resolver turns stored phase values into absolute values using a Table
type Resolver struct {
	table *Table
}

// NewResolver creates a resolver; a nil table selects the default one
func NewResolver(table *Table) *Resolver {
	if table == nil {
		table = Default()
	}
	return &Resolver{table: table}
}

// Table returns the phase table in use
func (r *Resolver) Table() *Table {
	return r.table
}

// ResolveAbsolute returns the absolute value of rec within its entity group.
// Absolute phases return their raw value. Relative phases add the resolved
// value of their predecessor, recursively, which must exist in group.
func (r *Resolver) ResolveAbsolute(group []model.MetricRecord, rec model.MetricRecord) (float64, error) {
	v, err := r.resolve(group, rec, nil)
	if err != nil {
		return 0, withRequested(err, rec.Phase)
	}
	return v, nil
}

// ResolveAll resolves every record of one entity group, in input order
func (r *Resolver) ResolveAll(group []model.MetricRecord) ([]model.ResolvedRecord, error) {
	memo := make(map[string]float64, len(group))
	resolved := make([]model.ResolvedRecord, 0, len(group))

	for _, rec := range group {
		out := model.ResolvedRecord{
			Entity:   rec.Entity,
			Phase:    rec.Phase,
			RawValue: rec.RawValue,
		}

		spec, relative := r.table.Lookup(rec.Phase)
		if !relative {
			out.AbsoluteValue = rec.RawValue
			resolved = append(resolved, out)
			continue
		}

		predValue, err := r.resolvePhase(group, rec, spec.Predecessor, memo)
		if err != nil {
			return nil, withRequested(err, rec.Phase)
		}
		out.Relative = true
		out.Predecessor = spec.Predecessor
		out.PredecessorValue = predValue
		out.Color = spec.Color
		out.AbsoluteValue = rec.RawValue + predValue
		resolved = append(resolved, out)
	}

	return resolved, nil
}

func (r *Resolver) resolve(group []model.MetricRecord, rec model.MetricRecord, memo map[string]float64) (float64, error) {
	spec, ok := r.table.Lookup(rec.Phase)
	if !ok {
		return rec.RawValue, nil
	}

	predValue, err := r.resolvePhase(group, rec, spec.Predecessor, memo)
	if err != nil {
		return 0, err
	}
	return rec.RawValue + predValue, nil
}

// resolvePhase resolves the record carrying phase on behalf of from
func (r *Resolver) resolvePhase(group []model.MetricRecord, from model.MetricRecord, phase string, memo map[string]float64) (float64, error) {
	if v, ok := memo[phase]; ok {
		return v, nil
	}

	pred, ok := findPhase(group, phase)
	if !ok {
		return 0, &model.MissingPredecessorError{
			Entity:      from.Entity,
			Phase:       from.Phase,
			Predecessor: phase,
		}
	}

	v, err := r.resolve(group, pred, memo)
	if err != nil {
		return 0, err
	}
	if memo != nil {
		memo[phase] = v
	}
	return v, nil
}

// withRequested records which phase was being resolved when a chain broke
func withRequested(err error, phase string) error {
	var missing *model.MissingPredecessorError
	if errors.As(err, &missing) && missing.Requested == "" {
		missing.Requested = phase
	}
	return err
}

// findPhase returns the first record with the given phase
func findPhase(group []model.MetricRecord, phase string) (model.MetricRecord, bool) {
	for _, rec := range group {
		if rec.Phase == phase {
			return rec, true
		}
	}
	return model.MetricRecord{}, false
}
