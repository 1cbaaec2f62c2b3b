package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/util"
)

// FullLayoutStrategy draws a header, a time axis, one bordered track per
// entity and, with Details, a legend line per segment
type FullLayoutStrategy struct {
	BaseStrategy
}

func (s *FullLayoutStrategy) GetName() string {
	return "Full Waterfall"
}

func (s *FullLayoutStrategy) Render(w io.Writer, set *model.TimelineSet, param RenderParams) error {
	if set == nil {
		set = &model.TimelineSet{}
	}
	param = s.Normalize(param)
	sizer := s.GetSizer()

	var sb strings.Builder
	title := fmt.Sprintf("Waterfall  %d timelines · %d records · max %s · zoom %.0f%%",
		set.Len(), set.RecordCount(), util.FormatMillis(set.MaxValue), param.Zoom)
	sb.WriteString(util.Styled(title, param.Color, util.ColorBold, util.ColorMagenta))
	sb.WriteString("\n")

	if !set.HasData() {
		sb.WriteString("No timeline data\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	viewport := sizer.ViewportColumns(param.Width, param.LabelWidth)
	track := sizer.TrackColumns(viewport, param.Zoom)

	sb.WriteString(s.axis(set.MaxValue, param.LabelWidth, viewport, track))
	sb.WriteString("\n")

	for _, tl := range set.Timelines {
		segments := Segments(tl, set.MaxValue)
		sb.WriteString(s.Label(tl.Entity, param.LabelWidth))
		sb.WriteString(" │")
		sb.WriteString(s.RenderTrack(segments, track, viewport, param.Color))
		sb.WriteString("│\n")

		if param.Details {
			indent := strings.Repeat(" ", param.LabelWidth+2)
			for _, seg := range segments {
				legend := fmt.Sprintf("%s - %s", seg.Phase, util.FormatMillis(seg.Duration))
				sb.WriteString(indent)
				sb.WriteString(util.Colorize("■", seg.Color, param.Color))
				sb.WriteString(" ")
				sb.WriteString(legend)
				sb.WriteString("\n")
			}
		}
	}

	for _, warning := range set.Warnings {
		sb.WriteString(util.Colorize("warning: "+warning.Message, "yellow", param.Color))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// axis labels the visible part of the track with its start and end offsets
func (s *FullLayoutStrategy) axis(maxValue float64, labelWidth, viewport, track int) string {
	visible := maxValue
	if track > viewport {
		visible = maxValue * float64(viewport) / float64(track)
	}

	left := "0ms"
	right := util.FormatMillis(visible)
	gap := viewport + 2 - s.GetSizer().displayWidth(left) - s.GetSizer().displayWidth(right)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", labelWidth+1) + left + strings.Repeat(" ", gap) + right
}
