package layout

import (
	"strings"

	"github.com/penwyp/go-perf-waterfall/internal/core/constants"
	"github.com/penwyp/go-perf-waterfall/internal/util"
)

const (
	noColorFill = '#'
	clipMarker  = '›'
)

// BaseStrategy provides common functionality for all layout strategies
type BaseStrategy struct {
}

// GetSizer returns the shared sizer instance
func (b *BaseStrategy) GetSizer() *Sizer {
	return sharedSizer
}

// Normalize fills in defaults for unset parameters
func (b *BaseStrategy) Normalize(param RenderParams) RenderParams {
	sizer := b.GetSizer()
	param.Width = sizer.ResolveWidth(param.Width)
	if param.LabelWidth <= 0 {
		param.LabelWidth = DefaultLabelWidth
	}
	if limit := param.Width - MinBarColumns - 3; param.LabelWidth > limit {
		param.LabelWidth = limit
	}
	param.Zoom = constants.ClampZoom(param.Zoom)
	return param
}

// Label right-aligns an entity name in the label column
func (b *BaseStrategy) Label(entity string, width int) string {
	return b.GetSizer().FitString(entity, width, false)
}

type trackCell struct {
	ch      rune
	segment int
}

// RenderTrack draws segments onto a track of trackCols columns and returns
// the first viewport columns of it, marking a cut edge. Each segment shows
// its phase name where it fits and later segments overwrite earlier ones.
func (b *BaseStrategy) RenderTrack(segments []Segment, trackCols, viewport int, color bool) string {
	sizer := b.GetSizer()

	cells := make([]trackCell, trackCols)
	for i := range cells {
		cells[i] = trackCell{ch: ' ', segment: -1}
	}

	for idx, seg := range segments {
		start, end := sizer.SpanColumns(seg, trackCols)
		name := []rune(seg.Phase)
		for c := start; c < end; c++ {
			ch := ' '
			if !color {
				ch = noColorFill
			}
			if pos := c - start; pos < len(name) && end-start > len(name) {
				ch = name[pos]
			}
			cells[c] = trackCell{ch: ch, segment: idx}
		}
	}

	if viewport > 0 && viewport < len(cells) {
		cells = cells[:viewport]
		cells[viewport-1] = trackCell{ch: clipMarker, segment: -1}
	}

	var sb strings.Builder
	for i := 0; i < len(cells); {
		j := i
		var run strings.Builder
		for j < len(cells) && cells[j].segment == cells[i].segment {
			run.WriteRune(cells[j].ch)
			j++
		}
		if idx := cells[i].segment; idx >= 0 {
			sb.WriteString(util.ColorizeBlock(run.String(), segments[idx].Color, color))
		} else {
			sb.WriteString(run.String())
		}
		i = j
	}

	return sb.String()
}
