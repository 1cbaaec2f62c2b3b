package layout

import (
	"io"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
)

const (
	LayoutFull = iota
	LayoutMinimal
)

// CompactBelow is the width under which the display switches to the minimal layout
const CompactBelow = 60

// RenderParams controls how a timeline set is drawn
type RenderParams struct {
	Width      int
	LabelWidth int
	Zoom       float64
	Color      bool
	Details    bool
}

// LayoutStrategy defines the interface for different layout rendering strategies
type LayoutStrategy interface {
	Render(w io.Writer, set *model.TimelineSet, param RenderParams) error
	GetName() string
}

// GetLayoutStrategy returns the appropriate layout strategy based on the style
func GetLayoutStrategy(layoutStyle int) LayoutStrategy {
	strategies := map[int]LayoutStrategy{
		LayoutFull:    &FullLayoutStrategy{},
		LayoutMinimal: &MinimalLayoutStrategy{},
	}

	if strategy, exists := strategies[layoutStyle]; exists {
		return strategy
	}

	// Default to the full waterfall if invalid style
	return &FullLayoutStrategy{}
}
