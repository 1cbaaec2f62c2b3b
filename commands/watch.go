package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/penwyp/go-perf-waterfall/internal/application/watch"
	"github.com/penwyp/go-perf-waterfall/internal/core/constants"
	"github.com/penwyp/go-perf-waterfall/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Display related flags
	watchTimezone string
	watchRefresh  time.Duration

	// Reload related flags
	watchPoll     time.Duration
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Show a live waterfall that follows a snapshot file",
	Long: `Renders the waterfall full screen and rebuilds it whenever the snapshot
file changes. A snapshot that fails to build is reported in the status line and
the last good waterfall stays on screen.

Keys:
  + / -      zoom in / out
  0          reset zoom
  t          toggle full / minimal layout
  d          toggle phase details
  r          reload now
  p          pause reloading
  h / ?      help
  q / Esc    quit`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	// Display flags
	watchCmd.Flags().StringVar(&watchTimezone, "timezone", "Local",
		"Timezone for the reload clock (e.g., Asia/Shanghai, UTC)")
	watchCmd.Flags().DurationVar(&watchRefresh, "refresh", constants.DefaultUIRefreshInterval,
		"Screen refresh interval")

	// Reload flags
	watchCmd.Flags().DurationVar(&watchPoll, "poll", constants.DefaultPollInterval,
		"Fallback polling interval for file changes")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", constants.ReloadDebounce,
		"Delay before reloading after a change event")
}

func runWatch(cmd *cobra.Command, args []string) error {
	initLogging()
	defer util.CloseLogger()

	if args[0] == "-" {
		return fmt.Errorf("watch needs a file, stdin cannot be followed")
	}
	if err := validateColorMode(); err != nil {
		return err
	}

	table, err := loadTable()
	if err != nil {
		return err
	}

	config := &watch.WatchConfig{
		File:              util.ExpandPath(args[0]),
		Table:             table,
		Timezone:          watchTimezone,
		Width:             width,
		Zoom:              zoom,
		Color:             colorEnabled(os.Stdout),
		Details:           details,
		Minimal:           minimal,
		UIRefreshInterval: watchRefresh,
		ReloadDebounce:    watchDebounce,
		PollInterval:      watchPoll,
	}

	orchestrator, err := watch.NewOrchestrator(config)
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return orchestrator.Run(ctx)
}
