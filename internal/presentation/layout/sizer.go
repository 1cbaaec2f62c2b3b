package layout

import (
	"math"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-perf-waterfall/internal/core/constants"
	"github.com/penwyp/go-perf-waterfall/internal/util"
	"golang.org/x/term"
)

const (
	DefaultWidth      = 100
	MinWidth          = 40
	DefaultLabelWidth = 24
	MinBarColumns     = 10
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

type Sizer struct {
}

// displayWidth calculates the actual display width of a string containing emojis and Unicode characters
func (i Sizer) displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadString pads a string to a specific display width, handling wide runes correctly
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actualWidth := i.displayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// FitString truncates s to width columns with an ellipsis and pads it
func (i Sizer) FitString(s string, width int, leftAlign bool) string {
	if width <= 0 {
		return ""
	}
	if i.displayWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return i.PadString(s, width, leftAlign)
}

// TerminalWidth returns the stdout width, or DefaultWidth when stdout is not a terminal
func (i Sizer) TerminalWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		return DefaultWidth
	}
	util.LogDebugf("Terminal width %d", termWidth)
	return termWidth
}

// ResolveWidth picks the requested width, or the terminal width for 0
func (i Sizer) ResolveWidth(requested int) int {
	width := requested
	if width <= 0 {
		width = i.TerminalWidth()
	}
	if width < MinWidth {
		width = MinWidth
	}
	return width
}

// ViewportColumns is the number of bar columns visible next to the label column
func (i Sizer) ViewportColumns(totalWidth, labelWidth int) int {
	// label, one space, and the two track borders
	cols := totalWidth - labelWidth - 3
	if cols < MinBarColumns {
		cols = MinBarColumns
	}
	return cols
}

// TrackColumns scales the viewport by the zoom percentage. The track can be
// wider than the viewport when zoomed in.
func (i Sizer) TrackColumns(viewport int, zoom float64) int {
	if zoom <= 0 {
		zoom = constants.DefaultZoom
	}
	cols := int(math.Round(float64(viewport) * zoom / 100))
	if cols < 1 {
		cols = 1
	}
	return cols
}

// SpanColumns maps a segment to the half-open column range [start, end) of a
// track. A visible segment always covers at least one column.
func (i Sizer) SpanColumns(seg Segment, trackCols int) (start, end int) {
	start = int(math.Floor(seg.Left / 100 * float64(trackCols)))
	end = int(math.Ceil(seg.Right() / 100 * float64(trackCols)))

	if start >= trackCols {
		start = trackCols - 1
	}
	if start < 0 {
		start = 0
	}
	if end > trackCols {
		end = trackCols
	}
	if seg.Width <= 0 {
		return start, start
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}
