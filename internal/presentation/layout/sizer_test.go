package layout

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestPadString(t *testing.T) {
	sizer := Sizer{}

	assert.Equal(t, "abc  ", sizer.PadString("abc", 5, true))
	assert.Equal(t, "  abc", sizer.PadString("abc", 5, false))
	assert.Equal(t, "abcdef", sizer.PadString("abcdef", 3, true))
	assert.Equal(t, "  文字", sizer.PadString("文字", 6, false))
}

func TestFitString(t *testing.T) {
	sizer := Sizer{}

	fitted := sizer.FitString("ComplexContentPreview", 10, false)
	assert.Equal(t, 10, runewidth.StringWidth(fitted))
	assert.True(t, strings.HasSuffix(fitted, "…"))

	assert.Equal(t, "     River", sizer.FitString("River", 10, false))
	assert.Empty(t, sizer.FitString("River", 0, false))
}

func TestResolveWidth(t *testing.T) {
	sizer := Sizer{}

	assert.Equal(t, 120, sizer.ResolveWidth(120))
	assert.Equal(t, MinWidth, sizer.ResolveWidth(10))
	assert.GreaterOrEqual(t, sizer.ResolveWidth(0), MinWidth)
}

func TestViewportAndTrackColumns(t *testing.T) {
	sizer := Sizer{}

	assert.Equal(t, 73, sizer.ViewportColumns(100, 24))
	assert.Equal(t, MinBarColumns, sizer.ViewportColumns(20, 24))

	tests := []struct {
		name string
		zoom float64
		want int
	}{
		{"default", 100, 80},
		{"zoom_in", 110, 88},
		{"zoom_out", 90, 72},
		{"minimum", 10, 8},
		{"unset", 0, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sizer.TrackColumns(80, tt.zoom))
		})
	}
}

func TestSpanColumns(t *testing.T) {
	sizer := Sizer{}

	tests := []struct {
		name      string
		seg       Segment
		cols      int
		wantStart int
		wantEnd   int
	}{
		{"first_half", Segment{Left: 0, Width: 50}, 10, 0, 5},
		{"whole_track", Segment{Left: 0, Width: 100}, 10, 0, 10},
		{"partial_cells_round_out", Segment{Left: 12, Width: 20}, 10, 1, 4},
		{"tiny_is_visible", Segment{Left: 40, Width: 0.1}, 10, 4, 5},
		{"zero_width", Segment{Left: 40, Width: 0}, 10, 4, 4},
		{"clamped_at_end", Segment{Left: 100, Width: 0}, 10, 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := sizer.SpanColumns(tt.seg, tt.cols)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
