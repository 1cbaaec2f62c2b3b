package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/penwyp/go-perf-waterfall/internal/core/timeline"
	"github.com/penwyp/go-perf-waterfall/internal/data/snapshot"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/display"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/interaction"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/layout"
	"github.com/penwyp/go-perf-waterfall/internal/util"
	"golang.org/x/sync/errgroup"
)

// KeySource delivers key presses to the live view
type KeySource interface {
	Events() <-chan interaction.KeyEvent
	Close() error
}

type Orchestrator struct {
	config *WatchConfig

	loader       *snapshot.Loader
	stateManager *StateManager
	display      *display.TerminalDisplay

	keyboard KeySource
	watcher  *FileWatcher
}

func NewOrchestrator(config *WatchConfig) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	clock, err := util.NewClock(config.Timezone)
	if err != nil {
		return nil, err
	}

	loader := snapshot.NewLoader(config.File, timeline.NewTimelineBuilder(config.Table))

	initial := InteractionState{
		Zoom:    interaction.NewZoom(config.Zoom),
		Details: config.Details,
	}
	if config.Minimal {
		initial.LayoutStyle = layout.LayoutMinimal
	}

	termDisplay := display.NewTerminalDisplay(&display.DisplayConfig{
		Width:      config.Width,
		LabelWidth: config.LabelWidth,
		Color:      config.Color,
		Clock:      clock,
	})

	return &Orchestrator{
		config:       config,
		loader:       loader,
		stateManager: NewStateManager(initial),
		display:      termDisplay,
	}, nil
}

// State exposes the state manager
func (o *Orchestrator) State() *StateManager {
	return o.stateManager
}

// Run shows the live waterfall until the context ends or the user quits.
// A snapshot that fails to load is reported in the status line and retried
// on the next change.
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting live waterfall", util.F("file", o.loader.Path()))

	if o.keyboard == nil {
		keyboard, err := interaction.NewKeyboardReader()
		if err != nil {
			return fmt.Errorf("failed to initialize keyboard: %w", err)
		}
		o.keyboard = keyboard
	}
	defer o.keyboard.Close()

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	o.reload()
	o.updateDisplay()

	watcher, err := NewFileWatcher(o.loader.Path())
	if err != nil {
		util.LogWarn("File watcher unavailable, falling back to polling", util.F("error", err.Error()))
	} else {
		o.watcher = watcher
		defer o.watcher.Close()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reloads := make(chan struct{}, 1)
	g, gctx := errgroup.WithContext(ctx)

	if o.watcher != nil {
		g.Go(func() error {
			return o.debounceEvents(gctx, o.watcher.Events(), reloads)
		})
	}
	g.Go(func() error {
		defer cancel()
		return o.loop(gctx, reloads)
	})

	err = g.Wait()
	util.LogInfo("Shutting down live waterfall")
	return err
}

func (o *Orchestrator) loop(ctx context.Context, reloads <-chan struct{}) error {
	uiTicker := time.NewTicker(o.config.UIRefreshInterval)
	defer uiTicker.Stop()

	pollTicker := time.NewTicker(o.config.PollInterval)
	defer pollTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-uiTicker.C:
			// picks up terminal resizes
			o.updateDisplay()

		case <-pollTicker.C:
			if !o.stateManager.GetInteractionState().Paused {
				o.reload()
			}

		case <-reloads:
			if !o.stateManager.GetInteractionState().Paused {
				o.reload()
				o.updateDisplay()
			}

		case keyEvent := <-o.keyboard.Events():
			if o.handleKeyboard(keyEvent) {
				return nil
			}
			o.updateDisplay()
		}
	}
}

// debounceEvents coalesces bursts of file events into one reload request
func (o *Orchestrator) debounceEvents(ctx context.Context, events <-chan FileEvent, reloads chan<- struct{}) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			util.LogDebug("Snapshot changed", util.F("path", event.Path), util.F("op", event.Operation))
			if timer == nil {
				timer = time.NewTimer(o.config.ReloadDebounce)
			} else {
				timer.Reset(o.config.ReloadDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case reloads <- struct{}{}:
			default:
			}
		}
	}
}

// reload rebuilds the timeline set when the snapshot changed
func (o *Orchestrator) reload() {
	result, err := o.loader.Load()
	if err != nil {
		util.LogWarn("Snapshot reload failed", util.F("error", err.Error()))
		o.stateManager.SetError(err)
		return
	}
	if result.Changed {
		o.stateManager.SetTimelines(result.Set, time.Now())
		for _, w := range result.Set.Warnings {
			util.LogWarn(w.Message, util.F("entity", w.Entity), util.F("phase", w.Phase))
		}
	}
}

func (o *Orchestrator) updateDisplay() {
	if err := o.display.Render(o.stateManager.ViewState(o.loader.Path())); err != nil {
		util.LogError("Render failed: " + err.Error())
	}
}

// handleKeyboard applies a key press and reports whether to exit
func (o *Orchestrator) handleKeyboard(event interaction.KeyEvent) bool {
	action := interaction.ActionForKey(event)

	// Esc closes help before it quits
	if event.Type == interaction.KeyEscape && o.stateManager.GetInteractionState().ShowHelp {
		o.stateManager.UpdateInteractionState(func(s *InteractionState) {
			s.ShowHelp = false
		})
		return false
	}

	switch action {
	case interaction.ActionQuit:
		return true
	case interaction.ActionReload:
		o.reload()
	case interaction.ActionNone:
	default:
		o.stateManager.ApplyAction(action)
		util.LogDebug("Key action", util.F("action", action.String()))
	}
	return false
}
