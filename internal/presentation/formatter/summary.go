package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/util"
)

// SummaryFormatter prints headline facts about one page load
type SummaryFormatter struct {
	w io.Writer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w}
}

type phaseStat struct {
	phase   string
	count   int
	longest model.ResolvedRecord
}

// Format writes the summary report
func (f *SummaryFormatter) Format(set *model.TimelineSet) error {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString("Page Load Waterfall Summary\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	if set.Len() == 0 {
		sb.WriteString("No timeline data\n")
		_, err := io.WriteString(f.w, sb.String())
		return err
	}

	first := set.Timelines[0]
	last := first
	var peak model.ResolvedRecord
	stats := make(map[string]*phaseStat)
	segments := 0

	for _, tl := range set.Timelines {
		if tl.End() > last.End() {
			last = tl
		}
		for _, rec := range tl.Records {
			if peak.Entity == "" || rec.AbsoluteValue > peak.AbsoluteValue {
				peak = rec
			}
			if !rec.Relative {
				continue
			}
			segments++
			stat, ok := stats[rec.Phase]
			if !ok {
				stat = &phaseStat{phase: rec.Phase}
				stats[rec.Phase] = stat
			}
			stat.count++
			if stat.count == 1 || rec.Duration() > stat.longest.Duration() {
				stat.longest = rec
			}
		}
	}

	fmt.Fprintf(&sb, "Entities:        %d\n", set.Len())
	fmt.Fprintf(&sb, "Records:         %d\n", set.RecordCount())
	fmt.Fprintf(&sb, "Segments:        %d\n", segments)
	fmt.Fprintf(&sb, "Max value:       %s (%s %s)\n", util.FormatMillis(set.MaxValue), peak.Entity, peak.Phase)
	fmt.Fprintf(&sb, "First to start:  %s at %s\n", first.Entity, util.FormatMillis(first.Start()))
	fmt.Fprintf(&sb, "Last to finish:  %s at %s\n", last.Entity, util.FormatMillis(last.End()))

	if len(stats) > 0 {
		ordered := make([]*phaseStat, 0, len(stats))
		for _, stat := range stats {
			ordered = append(ordered, stat)
		}
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].phase < ordered[j].phase
		})

		var longest *phaseStat
		sb.WriteString("\nRelative phases:\n")
		for _, stat := range ordered {
			fmt.Fprintf(&sb, "  %-10s %3d segments, longest %s (%s)\n",
				stat.phase, stat.count, util.FormatMillis(stat.longest.Duration()), stat.longest.Entity)
			if longest == nil || stat.longest.Duration() > longest.longest.Duration() {
				longest = stat
			}
		}
		fmt.Fprintf(&sb, "\nLongest phase:   %s %s, %s (%s of max)\n",
			longest.longest.Entity, longest.phase, util.FormatMillis(longest.longest.Duration()),
			util.FormatPercent(longest.longest.Duration()/set.MaxValue*100))
	}

	if len(set.Warnings) > 0 {
		fmt.Fprintf(&sb, "\nWarnings (%d):\n", len(set.Warnings))
		for _, w := range set.Warnings {
			sb.WriteString("  - " + w.Message + "\n")
		}
	}

	_, err := io.WriteString(f.w, sb.String())
	return err
}
