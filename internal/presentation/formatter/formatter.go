package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/layout"
)

// Output formats
const (
	OutputWaterfall = "waterfall"
	OutputTable     = "table"
	OutputJSON      = "json"
	OutputCSV       = "csv"
	OutputSummary   = "summary"
)

// Outputs lists the supported output formats
var Outputs = []string{OutputWaterfall, OutputTable, OutputJSON, OutputCSV, OutputSummary}

// Options carries the rendering flags shared by all formatters
type Options struct {
	Width   int
	Zoom    float64
	Color   bool
	Details bool
	Layout  int
}

// Formatter writes a timeline set in one output format
type Formatter interface {
	Format(set *model.TimelineSet) error
}

// NewFormatter returns the formatter for output writing to w
func NewFormatter(output string, w io.Writer, opts Options) (Formatter, error) {
	switch strings.ToLower(output) {
	case OutputWaterfall, "":
		return NewWaterfallFormatter(w, opts), nil
	case OutputTable:
		return NewTableFormatter(w), nil
	case OutputJSON:
		return NewJSONFormatter(w), nil
	case OutputCSV:
		return NewCSVFormatter(w), nil
	case OutputSummary:
		return NewSummaryFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (valid: %s)", output, strings.Join(Outputs, ", "))
	}
}

// WaterfallFormatter renders bars through a layout strategy
type WaterfallFormatter struct {
	w        io.Writer
	opts     Options
	strategy layout.LayoutStrategy
}

func NewWaterfallFormatter(w io.Writer, opts Options) *WaterfallFormatter {
	return &WaterfallFormatter{
		w:        w,
		opts:     opts,
		strategy: layout.GetLayoutStrategy(opts.Layout),
	}
}

func (f *WaterfallFormatter) Format(set *model.TimelineSet) error {
	return f.strategy.Render(f.w, set, layout.RenderParams{
		Width:   f.opts.Width,
		Zoom:    f.opts.Zoom,
		Color:   f.opts.Color,
		Details: f.opts.Details,
	})
}

// segmentPercents returns the bar placement of a record, or empty strings
// for records that only anchor other phases
func segmentPercents(rec model.ResolvedRecord, maxValue float64) (left, width string) {
	seg, ok := layout.Geometry(rec, maxValue)
	if !ok {
		return "", ""
	}
	return fmt.Sprintf("%.1f", seg.Left), fmt.Sprintf("%.1f", seg.Width)
}
