package formatter

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-perf-waterfall/internal/core/model"
)

type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

func (f *JSONFormatter) Format(set *model.TimelineSet) error {
	out := model.TimelineSet{Timelines: []model.Timeline{}}
	if set != nil {
		out = *set
		if out.Timelines == nil {
			out.Timelines = []model.Timeline{}
		}
	}

	data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.w.Write(data)
	return err
}
