package layout

import (
	"math"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
)

// Segment is the horizontal placement of one relative phase, in percent of
// the bar track
type Segment struct {
	Phase    string
	Color    string
	Duration float64
	Left     float64
	Width    float64
}

// Right returns the end of the segment in percent
func (s Segment) Right() float64 {
	return s.Left + s.Width
}

// Round3 rounds to three decimal places, halves toward +Inf
func Round3(v float64) float64 {
	return math.Floor(v*1000+0.5) / 1000
}

// RelativeWidthPercent converts a value on the shared scale to a percentage
// rounded to a tenth of a percent
func RelativeWidthPercent(value, maxValue float64) float64 {
	return Round3(value/maxValue) * 100
}

// Geometry places a relative phase on the track. Absolute phases only anchor
// other phases and produce no segment, as does a non-positive scale.
func Geometry(rec model.ResolvedRecord, maxValue float64) (Segment, bool) {
	if !rec.Relative || maxValue <= 0 {
		return Segment{}, false
	}

	duration := rec.AbsoluteValue - rec.PredecessorValue
	return Segment{
		Phase:    rec.Phase,
		Color:    rec.Color,
		Duration: duration,
		Left:     RelativeWidthPercent(rec.PredecessorValue, maxValue),
		Width:    RelativeWidthPercent(duration, maxValue),
	}, true
}

// Segments returns the segments of a timeline in record order
func Segments(tl model.Timeline, maxValue float64) []Segment {
	var segments []Segment
	for _, rec := range tl.Records {
		if seg, ok := Geometry(rec, maxValue); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}
