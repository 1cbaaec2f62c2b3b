package timeline

import (
	"sort"
	"strings"

	"github.com/penwyp/go-perf-waterfall/internal/core/constants"
	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/util"
)

// SplitKey splits a composite "<entity>-<phase>" key. Keys without exactly one
// separator, or with an empty side, are scalar counters and return false.
func SplitKey(key string) (entity, phase string, ok bool) {
	parts := strings.Split(key, constants.KeySeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Decompose turns a raw metric map into per-entity phase records. Keys are
// visited in sorted order so the output, and every stable tie-break built on
// it, is deterministic.
func Decompose(raw map[string]float64) []model.MetricRecord {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([]model.MetricRecord, 0, len(keys))
	dropped := 0
	for _, key := range keys {
		entity, phase, ok := SplitKey(key)
		if !ok {
			dropped++
			continue
		}
		records = append(records, model.MetricRecord{
			Entity:   entity,
			Phase:    phase,
			RawValue: raw[key],
		})
	}

	if dropped > 0 {
		util.LogDebugf("Decomposed %d metric keys, skipped %d scalar keys", len(records), dropped)
	}
	return records
}
