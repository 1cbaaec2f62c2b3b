package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/core/phase"
	"github.com/penwyp/go-perf-waterfall/internal/core/timeline"
	"github.com/penwyp/go-perf-waterfall/internal/data/parser"
	"github.com/penwyp/go-perf-waterfall/internal/data/sample"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/formatter"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/layout"
	"github.com/penwyp/go-perf-waterfall/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Input related
	phasesFile string
	useSample  bool

	// Output related
	outputFormat string
	width        int
	zoom         float64
	colorMode    string
	details      bool
	minimal      bool

	rootCmd = &cobra.Command{
		Use:   "go-perf-waterfall [file] [flags]",
		Short: "Page-load performance waterfall",
		Long: `go-perf-waterfall turns a flat performance snapshot into a waterfall of
per-module loading phases.

The snapshot is a JSON object whose "<entity>-<phase>" keys hold timing marks.
Relative phases (config, script, connect, render...) are offsets from their
predecessor phase and are resolved into absolute times before rendering.

Examples:
  go-perf-waterfall perf.json                         # Render the waterfall
  go-perf-waterfall --sample                          # Render the built-in sample trace
  go-perf-waterfall perf.json -o table                # Show resolved values as a table
  go-perf-waterfall perf.json -o json                 # Emit the timeline set as JSON
  cat perf.json | go-perf-waterfall -                 # Read the snapshot from stdin
  go-perf-waterfall perf.json --phases phases.yaml    # Use a custom phase table
  go-perf-waterfall watch perf.json                   # Live view with zoom keys`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runWaterfall,
	}
)

const (
	defaultLogFile = "~/.go-perf-waterfall/logs/app.log"

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func init() {
	// Input configuration
	rootCmd.PersistentFlags().StringVar(&phasesFile, "phases", "",
		"Phase table file (JSON or YAML); empty uses the built-in table")
	rootCmd.Flags().BoolVar(&useSample, "sample", false,
		"Use the built-in sample snapshot instead of a file")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", formatter.OutputWaterfall,
		"Output format (waterfall, table, json, csv, summary)")
	rootCmd.PersistentFlags().IntVarP(&width, "width", "w", 0,
		"Output width in columns (0 = terminal width)")
	rootCmd.PersistentFlags().Float64VarP(&zoom, "zoom", "z", 100,
		"Horizontal zoom in percent (10-1000)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", colorAuto,
		"Color output (auto, always, never)")
	rootCmd.PersistentFlags().BoolVar(&details, "details", false,
		"Show phase durations under each bar")
	rootCmd.PersistentFlags().BoolVar(&minimal, "minimal", false,
		"Use the borderless minimal layout")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runWaterfall(cmd *cobra.Command, args []string) error {
	initLogging()
	defer util.CloseLogger()

	if err := validateColorMode(); err != nil {
		return err
	}

	table, err := loadTable()
	if err != nil {
		return err
	}

	raw, source, err := readSnapshot(cmd, args)
	if err != nil {
		return err
	}

	set, err := timeline.NewTimelineBuilder(table).Build(raw)
	if err != nil {
		return fmt.Errorf("failed to build waterfall from %s: %w", source, err)
	}
	logTimelineSet(set)

	out := cmd.OutOrStdout()
	f, err := formatter.NewFormatter(outputFormat, out, formatter.Options{
		Width:   width,
		Zoom:    zoom,
		Color:   colorEnabled(out),
		Details: details,
		Layout:  layoutStyle(),
	})
	if err != nil {
		return err
	}
	return f.Format(set)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func initLogging() {
	// Determine log level based on debug flag
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := util.ExpandPath(defaultLogFile)
	if err := util.EnsureDir(filepath.Dir(logFile)); err != nil {
		logFile = ""
	}
	if err := util.InitLogger(logLevel, logFile, debug); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
}

// readSnapshot returns the metric map and a name for it used in messages
func readSnapshot(cmd *cobra.Command, args []string) (map[string]float64, string, error) {
	switch {
	case useSample:
		if len(args) > 0 {
			return nil, "", fmt.Errorf("--sample cannot be combined with a snapshot file")
		}
		return sample.Snapshot(), "sample", nil
	case len(args) == 0:
		return nil, "", fmt.Errorf("a snapshot file is required (use - for stdin or --sample)")
	case args[0] == parser.StdinPath:
		raw, err := parser.ReadSnapshot(cmd.InOrStdin())
		return raw, "stdin", err
	default:
		raw, err := parser.LoadSnapshot(args[0])
		return raw, args[0], err
	}
}

func loadTable() (*phase.Table, error) {
	return parser.LoadPhaseTable(phasesFile)
}

func validateColorMode() error {
	switch colorMode {
	case colorAuto, colorAlways, colorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode '%s': must be auto, always or never", colorMode)
	}
}

// colorEnabled resolves --color against the output stream
func colorEnabled(w io.Writer) bool {
	switch colorMode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func layoutStyle() int {
	if minimal {
		return layout.LayoutMinimal
	}
	return layout.LayoutFull
}

// logTimelineSet writes the max value and every timeline to the debug log
func logTimelineSet(set *model.TimelineSet) {
	util.LogDebugf("Max value %s across %d timelines", util.FormatFloat(set.MaxValue), set.Len())
	for _, tl := range set.Timelines {
		util.LogDebug("Timeline",
			util.F("entity", tl.Entity),
			util.F("records", len(tl.Records)),
			util.F("start", tl.Start()),
			util.F("end", tl.End()))
	}
	for _, w := range set.Warnings {
		util.LogWarn(w.Message, util.F("entity", w.Entity), util.F("phase", w.Phase))
	}
}
