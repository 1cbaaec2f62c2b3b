package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/core/timeline"
	"github.com/penwyp/go-perf-waterfall/internal/util"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:    "inspect [file]",
	Short:  "Dump how a snapshot is decomposed and resolved",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	RunE:   runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&useSample, "sample", false,
		"Use the built-in sample snapshot instead of a file")
}

func runInspect(cmd *cobra.Command, args []string) error {
	initLogging()
	defer util.CloseLogger()

	table, err := loadTable()
	if err != nil {
		return err
	}

	raw, source, err := readSnapshot(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dropped := droppedKeys(raw)
	fmt.Fprintf(out, "source %s: %d keys, %d phase marks, %d ignored\n",
		source, len(raw), len(raw)-len(dropped), len(dropped))
	for _, key := range dropped {
		fmt.Fprintf(out, "  ignored %s = %s\n", key, util.FormatFloat(raw[key]))
	}

	set, err := timeline.NewTimelineBuilder(table).Build(raw)
	if err != nil {
		return fmt.Errorf("failed to build waterfall from %s: %w", source, err)
	}
	return dumpTimelineSet(out, set)
}

// droppedKeys returns the sorted keys that are not "<entity>-<phase>" marks
func droppedKeys(raw map[string]float64) []string {
	var keys []string
	for key := range raw {
		if _, _, ok := timeline.SplitKey(key); !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func dumpTimelineSet(w io.Writer, set *model.TimelineSet) error {
	fmt.Fprintf(w, "max value %s\n", util.FormatFloat(set.MaxValue))
	for _, tl := range set.Timelines {
		fmt.Fprintf(w, "%s [%s .. %s]\n", tl.Entity, util.FormatFloat(tl.Start()), util.FormatFloat(tl.End()))
		for _, rec := range tl.Records {
			if rec.Relative {
				fmt.Fprintf(w, "  %-12s %s = %s + %s (%s)\n", rec.Phase,
					util.FormatFloat(rec.AbsoluteValue), util.FormatFloat(rec.RawValue),
					util.FormatFloat(rec.PredecessorValue), rec.Predecessor)
				continue
			}
			fmt.Fprintf(w, "  %-12s %s\n", rec.Phase, util.FormatFloat(rec.AbsoluteValue))
		}
	}
	for _, warning := range set.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning.Message)
	}
	return nil
}
