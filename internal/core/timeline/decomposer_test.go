package timeline

import (
	"testing"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key        string
		wantEntity string
		wantPhase  string
		wantOK     bool
	}{
		{"X-loading", "X", "loading", true},
		{"PivotContent-render2", "PivotContent", "render2", true},
		{"OrphanMetric", "", "", false},
		{"A-B-C", "", "", false},
		{"-loading", "", "", false},
		{"X-", "", "", false},
		{"-", "", "", false},
		{"", "", "", false},
		{"ConfigFetch.river", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			entity, phase, ok := SplitKey(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantEntity, entity)
			assert.Equal(t, tt.wantPhase, phase)
		})
	}
}

func TestDecompose(t *testing.T) {
	raw := map[string]float64{
		"X-loading":    100,
		"X-config":     10,
		"OrphanMetric": 7,
		"A-B-C":        3,
		"TTVR.River":   703,
	}

	records := Decompose(raw)

	assert.Equal(t, []model.MetricRecord{
		{Entity: "X", Phase: "config", RawValue: 10},
		{Entity: "X", Phase: "loading", RawValue: 100},
	}, records)
}

func TestDecomposeEmpty(t *testing.T) {
	assert.Empty(t, Decompose(nil))
	assert.Empty(t, Decompose(map[string]float64{"TTF": 206}))
}

func TestDecomposeIsDeterministic(t *testing.T) {
	raw := map[string]float64{}
	for _, e := range []string{"A", "B", "C", "D", "E"} {
		for _, p := range []string{"loading", "config", "script", "connecting", "connect"} {
			raw[e+"-"+p] = 1
		}
	}

	first := Decompose(raw)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Decompose(raw))
	}
}
