package layout

import (
	"io"
	"strings"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
)

// MinimalLayoutStrategy draws only label and track, one line per entity
type MinimalLayoutStrategy struct {
	BaseStrategy
}

func (s *MinimalLayoutStrategy) GetName() string {
	return "Minimal Waterfall"
}

func (s *MinimalLayoutStrategy) Render(w io.Writer, set *model.TimelineSet, param RenderParams) error {
	if set == nil {
		set = &model.TimelineSet{}
	}
	param = s.Normalize(param)
	if !set.HasData() {
		_, err := io.WriteString(w, "No timeline data\n")
		return err
	}

	sizer := s.GetSizer()
	// no borders here, so the track gets their two columns back
	viewport := sizer.ViewportColumns(param.Width, param.LabelWidth) + 2
	track := sizer.TrackColumns(viewport, param.Zoom)

	var sb strings.Builder
	for _, tl := range set.Timelines {
		sb.WriteString(s.Label(tl.Entity, param.LabelWidth))
		sb.WriteString(" ")
		sb.WriteString(s.RenderTrack(Segments(tl, set.MaxValue), track, viewport, param.Color))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
