package formatter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/util"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(set *model.TimelineSet) error {
	w := csv.NewWriter(f.w)

	headers := []string{
		"entity", "phase", "relative", "predecessor", "raw", "absolute", "duration", "left_pct", "width_pct",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	maxValue := 0.0
	if set != nil {
		maxValue = set.MaxValue
	}
	for _, tl := range timelinesOf(set) {
		for _, rec := range tl.Records {
			duration := ""
			if rec.Relative {
				duration = util.FormatFloat(rec.Duration())
			}
			left, width := segmentPercents(rec, maxValue)
			record := []string{
				tl.Entity,
				rec.Phase,
				strconv.FormatBool(rec.Relative),
				rec.Predecessor,
				util.FormatFloat(rec.RawValue),
				util.FormatFloat(rec.AbsoluteValue),
				duration,
				left,
				width,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func timelinesOf(set *model.TimelineSet) []model.Timeline {
	if set == nil {
		return nil
	}
	return set.Timelines
}
