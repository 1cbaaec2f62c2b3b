package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/core/timeline"
	"github.com/penwyp/go-perf-waterfall/internal/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceSet(t *testing.T) *model.TimelineSet {
	t.Helper()
	set, err := timeline.NewTimelineBuilder(nil).Build(fixtures.ReferenceSnapshot())
	require.NoError(t, err)
	return set
}

func TestGetLayoutStrategy(t *testing.T) {
	assert.Equal(t, "Full Waterfall", GetLayoutStrategy(LayoutFull).GetName())
	assert.Equal(t, "Minimal Waterfall", GetLayoutStrategy(LayoutMinimal).GetName())
	assert.Equal(t, "Full Waterfall", GetLayoutStrategy(99).GetName())
}

func TestRenderTrack(t *testing.T) {
	base := &BaseStrategy{}
	half := []Segment{{Phase: "config", Color: "red", Left: 0, Width: 50}}

	t.Run("plain", func(t *testing.T) {
		got := base.RenderTrack(half, 20, 20, false)
		assert.Equal(t, "config####          ", got)
	})

	t.Run("name_does_not_fit", func(t *testing.T) {
		got := base.RenderTrack([]Segment{{Phase: "config", Left: 0, Width: 10}}, 20, 20, false)
		assert.Equal(t, "##                  ", got)
	})

	t.Run("clipped_when_zoomed", func(t *testing.T) {
		full := []Segment{{Phase: "config", Left: 0, Width: 100}}
		got := base.RenderTrack(full, 40, 20, false)
		assert.Equal(t, "config"+strings.Repeat("#", 13)+"›", got)
	})

	t.Run("later_segment_wins", func(t *testing.T) {
		segments := []Segment{
			{Phase: "a", Left: 0, Width: 50},
			{Phase: "b", Left: 25, Width: 25},
		}
		got := base.RenderTrack(segments, 8, 8, false)
		assert.Equal(t, "a#b#    ", got)
	})

	t.Run("colored", func(t *testing.T) {
		got := base.RenderTrack(half, 20, 20, true)
		assert.Contains(t, got, "\033[41m")
		assert.Equal(t, "config              ", fixtures.StripANSI(got))
	})
}

func TestFullLayoutRender(t *testing.T) {
	set := referenceSet(t)
	strategy := GetLayoutStrategy(LayoutFull)

	var buf bytes.Buffer
	require.NoError(t, strategy.Render(&buf, set, RenderParams{Width: 120}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+set.Len())
	assert.Contains(t, lines[0], "26 timelines")
	assert.Contains(t, lines[0], "241 records")
	assert.Contains(t, lines[1], "0ms")
	assert.Contains(t, lines[1], "1.59s")

	for i, tl := range set.Timelines {
		row := lines[i+2]
		assert.Equal(t, 120, runewidth.StringWidth(row), "row %q", row)
		assert.True(t, strings.HasPrefix(strings.TrimLeft(row, " "), tl.Entity) ||
			strings.Contains(row, "…"), "row %q", row)
	}
	assert.NotContains(t, buf.String(), "\033[")
}

func TestFullLayoutDetails(t *testing.T) {
	set, err := timeline.NewTimelineBuilder(nil).Build(fixtures.ChainSnapshot())
	require.NoError(t, err)

	var buf bytes.Buffer
	strategy := GetLayoutStrategy(LayoutFull)
	require.NoError(t, strategy.Render(&buf, set, RenderParams{Width: 80, Details: true}))

	out := buf.String()
	assert.Contains(t, out, "config - 10.0ms")
	assert.Contains(t, out, "script - 2.00ms")
	assert.NotContains(t, out, "loading -")
}

func TestFullLayoutWarnings(t *testing.T) {
	set, err := timeline.NewTimelineBuilder(nil).Assemble([]model.MetricRecord{
		{Entity: "D", Phase: "loading", RawValue: 10},
		{Entity: "D", Phase: "loading", RawValue: 20},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, GetLayoutStrategy(LayoutFull).Render(&buf, set, RenderParams{Width: 80}))
	assert.Contains(t, buf.String(), "warning: duplicate phase")
}

func TestLayoutsRenderEmptySet(t *testing.T) {
	for _, style := range []int{LayoutFull, LayoutMinimal} {
		strategy := GetLayoutStrategy(style)
		t.Run(strategy.GetName(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, strategy.Render(&buf, nil, RenderParams{Width: 80}))
			assert.Contains(t, buf.String(), "No timeline data")

			buf.Reset()
			require.NoError(t, strategy.Render(&buf, &model.TimelineSet{}, RenderParams{Width: 80}))
			assert.Contains(t, buf.String(), "No timeline data")
		})
	}
}

func TestMinimalLayoutRender(t *testing.T) {
	set := referenceSet(t)

	var buf bytes.Buffer
	require.NoError(t, GetLayoutStrategy(LayoutMinimal).Render(&buf, set, RenderParams{Width: 50, LabelWidth: 12}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, set.Len())
	for _, line := range lines {
		assert.Equal(t, 50, runewidth.StringWidth(line))
	}
}

func TestZoomWidensTrack(t *testing.T) {
	set := referenceSet(t)
	strategy := GetLayoutStrategy(LayoutMinimal)

	var normal, zoomed bytes.Buffer
	require.NoError(t, strategy.Render(&normal, set, RenderParams{Width: 80, Zoom: 100}))
	require.NoError(t, strategy.Render(&zoomed, set, RenderParams{Width: 80, Zoom: 300}))

	assert.NotEqual(t, normal.String(), zoomed.String())
	assert.Contains(t, zoomed.String(), "›")
}

func TestNormalizeClampsZoom(t *testing.T) {
	base := &BaseStrategy{}

	tests := []struct {
		name     string
		zoom     float64
		expected float64
	}{
		{"unset", 0, 100},
		{"negative", -50, 100},
		{"too_small", 1, 10},
		{"in_range", 250, 250},
		{"too_large", 1e15, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			param := base.Normalize(RenderParams{Width: 80, Zoom: tt.zoom})
			assert.Equal(t, tt.expected, param.Zoom)
		})
	}
}

func TestRenderHugeZoom(t *testing.T) {
	set := referenceSet(t)

	for _, style := range []int{LayoutFull, LayoutMinimal} {
		var buf bytes.Buffer
		require.NoError(t, GetLayoutStrategy(style).Render(&buf, set, RenderParams{Width: 80, Zoom: 1e15}))
		assert.Contains(t, buf.String(), "›")
	}

	var full bytes.Buffer
	require.NoError(t, GetLayoutStrategy(LayoutFull).Render(&full, set, RenderParams{Width: 80, Zoom: 1e15}))
	assert.Contains(t, full.String(), "zoom 1000%")
}
