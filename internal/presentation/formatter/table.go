package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/util"
)

type TableFormatter struct {
	w       io.Writer
	headers []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		w: w,
		headers: []string{
			"Entity", "Phase", "From", "Raw (ms)", "Absolute (ms)", "Duration (ms)", "Left %", "Width %",
		},
	}
}

func (f *TableFormatter) Format(set *model.TimelineSet) error {
	if set.Len() == 0 {
		_, err := fmt.Fprintln(f.w, "No timeline data")
		return err
	}

	rows := f.buildRows(set)
	widths := f.calculateColumnWidths(rows)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")

	for i, group := range rows {
		for _, row := range group {
			f.printRow(row, widths)
		}
		if i < len(rows)-1 {
			f.printBorder(widths, "middle")
		}
	}

	f.printBorder(widths, "bottom")
	_, err := fmt.Fprintf(f.w, "Max: %s ms\n", util.FormatFloat(set.MaxValue))
	return err
}

// buildRows renders cell text per timeline. The entity name is only shown on
// the first row of its group.
func (f *TableFormatter) buildRows(set *model.TimelineSet) [][][]string {
	groups := make([][][]string, 0, set.Len())
	for _, tl := range set.Timelines {
		group := make([][]string, 0, len(tl.Records))
		for i, rec := range tl.Records {
			entity := ""
			if i == 0 {
				entity = tl.Entity
			}
			duration := ""
			if rec.Relative {
				duration = fmt.Sprintf("%.3f", rec.Duration())
			}
			left, width := segmentPercents(rec, set.MaxValue)
			group = append(group, []string{
				entity,
				rec.Phase,
				rec.Predecessor,
				fmt.Sprintf("%.3f", rec.RawValue),
				fmt.Sprintf("%.3f", rec.AbsoluteValue),
				duration,
				left,
				width,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// calculateColumnWidths determines optimal width for each column based on content
func (f *TableFormatter) calculateColumnWidths(rows [][][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	for _, group := range rows {
		for _, row := range group {
			for i, value := range row {
				if w := util.GetDisplayWidth(value); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string

	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(separator, width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			sb.WriteString(middle)
		}
	}
	sb.WriteString(right)
	fmt.Fprintln(f.w, sb.String())
}

// printRow prints a row; the first three columns are text, the rest numeric
func (f *TableFormatter) printRow(values []string, widths []int) {
	var sb strings.Builder
	sb.WriteString("│")
	for i, value := range values {
		pad := strings.Repeat(" ", widths[i]-util.GetDisplayWidth(value))
		if i < 3 {
			sb.WriteString(" " + value + pad + " │")
		} else {
			sb.WriteString(" " + pad + value + " │")
		}
	}
	fmt.Fprintln(f.w, sb.String())
}
