package timeline

import (
	"fmt"
	"sort"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/core/phase"
	"github.com/penwyp/go-perf-waterfall/internal/util"
)

// TimelineBuilder assembles per-entity timelines from decomposed metrics
type TimelineBuilder struct {
	resolver *phase.Resolver
}

// NewTimelineBuilder creates a builder for the given phase table; nil selects the default table
func NewTimelineBuilder(table *phase.Table) *TimelineBuilder {
	return &TimelineBuilder{
		resolver: phase.NewResolver(table),
	}
}

// Resolver returns the resolver used by the builder
func (tb *TimelineBuilder) Resolver() *phase.Resolver {
	return tb.resolver
}

// Build decomposes a raw metric snapshot and assembles it
func (tb *TimelineBuilder) Build(raw map[string]float64) (*model.TimelineSet, error) {
	return tb.Assemble(Decompose(raw))
}

// Assemble groups records by entity, resolves absolute values, sorts each
// group and then the groups themselves, and tracks the shared scale.
// A broken predecessor chain in any entity fails the whole assembly.
func (tb *TimelineBuilder) Assemble(records []model.MetricRecord) (*model.TimelineSet, error) {
	groups, warnings := GroupByEntity(records)

	set := &model.TimelineSet{
		Timelines: make([]model.Timeline, 0, len(groups)),
		Warnings:  warnings,
	}

	for _, group := range groups {
		resolved, err := tb.resolver.ResolveAll(group.Records)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve timeline for %s: %w", group.Entity, err)
		}
		SortTimeline(resolved)

		if last := resolved[len(resolved)-1].AbsoluteValue; last > set.MaxValue {
			set.MaxValue = last
		}
		set.Timelines = append(set.Timelines, model.Timeline{
			Entity:  group.Entity,
			Records: resolved,
		})
	}

	SortTimelines(set.Timelines)

	util.LogDebugf("Assembled %d timelines from %d records, max = %s",
		len(set.Timelines), len(records), util.FormatFloat(set.MaxValue))
	return set, nil
}

// EntityGroup holds the records of one entity in decomposition order
type EntityGroup struct {
	Entity  string
	Records []model.MetricRecord
}

// GroupByEntity partitions records by entity, keeping entities in order of
// first appearance. A phase repeated within an entity keeps its first record;
// later ones are dropped and reported.
func GroupByEntity(records []model.MetricRecord) ([]EntityGroup, []model.Warning) {
	var (
		groups   []EntityGroup
		warnings []model.Warning
	)
	index := make(map[string]int)
	seen := make(map[string]map[string]bool)

	for _, rec := range records {
		i, ok := index[rec.Entity]
		if !ok {
			i = len(groups)
			index[rec.Entity] = i
			groups = append(groups, EntityGroup{Entity: rec.Entity})
			seen[rec.Entity] = make(map[string]bool)
		}

		if seen[rec.Entity][rec.Phase] {
			w := model.Warning{
				Kind:    model.WarningDuplicatePhase,
				Entity:  rec.Entity,
				Phase:   rec.Phase,
				Message: fmt.Sprintf("duplicate phase %q for %s, keeping the first value", rec.Phase, rec.Entity),
			}
			warnings = append(warnings, w)
			util.LogWarn(w.Message, util.F("entity", rec.Entity), util.F("phase", rec.Phase), util.F("dropped", rec.RawValue))
			continue
		}
		seen[rec.Entity][rec.Phase] = true
		groups[i].Records = append(groups[i].Records, rec)
	}

	return groups, warnings
}

// SortTimeline orders one entity's records by absolute value. Ties keep their
// decomposition order.
func SortTimeline(records []model.ResolvedRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AbsoluteValue < records[j].AbsoluteValue
	})
}

// SortTimelines orders timelines by their earliest absolute value. Ties keep
// the order of first appearance.
func SortTimelines(timelines []model.Timeline) {
	sort.SliceStable(timelines, func(i, j int) bool {
		return timelines[i].Start() < timelines[j].Start()
	})
}
