package display

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/layout"
	"github.com/penwyp/go-perf-waterfall/internal/util"
)

// DisplayConfig holds the fixed settings of a live display
type DisplayConfig struct {
	Out        io.Writer
	Width      int // 0 follows the terminal
	LabelWidth int
	Color      bool
	Clock      *util.Clock
}

// ViewState is everything one frame shows
type ViewState struct {
	Set         *model.TimelineSet
	File        string
	Zoom        float64
	LayoutStyle int
	Details     bool
	Paused      bool
	ShowHelp    bool
	LastReload  time.Time
	LastError   error
}

type TerminalDisplay struct {
	config            *DisplayConfig
	mu                sync.Mutex
	inAlternateScreen bool
	lastLayoutStyle   int
	lastHelp          bool
	isFirstRender     bool
}

func NewTerminalDisplay(config *DisplayConfig) *TerminalDisplay {
	if config.Out == nil {
		config.Out = os.Stdout
	}
	if config.Clock == nil {
		config.Clock, _ = util.NewClock("Local")
	}
	return &TerminalDisplay{
		config:        config,
		isFirstRender: true,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	td.mu.Lock()
	defer td.mu.Unlock()

	if !td.inAlternateScreen {
		fmt.Fprint(td.config.Out, util.EnterAltScreen+util.ClearScreen+util.ClearScrollback+
			util.ResetScrollRegion+util.HideCursor+util.MoveCursorHome)
		td.inAlternateScreen = true
		td.isFirstRender = true
	}
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	td.mu.Lock()
	defer td.mu.Unlock()

	if td.inAlternateScreen {
		fmt.Fprint(td.config.Out, util.ClearScreen+util.MoveCursorHome+util.ShowCursor+util.ExitAltScreen)
		td.inAlternateScreen = false
	}
}

// Render draws one frame. The screen is fully cleared on the first frame and
// whenever the layout or help toggles; otherwise lines are overwritten in place.
func (td *TerminalDisplay) Render(state ViewState) error {
	td.mu.Lock()
	defer td.mu.Unlock()

	var buf bytes.Buffer
	if td.isFirstRender || td.lastLayoutStyle != state.LayoutStyle || td.lastHelp != state.ShowHelp {
		buf.WriteString(util.ClearScreen)
		td.isFirstRender = false
		td.lastLayoutStyle = state.LayoutStyle
		td.lastHelp = state.ShowHelp
	}
	buf.WriteString(util.MoveCursorHome)

	frame, err := td.Frame(state)
	if err != nil {
		return err
	}
	// clear each line's tail so a shorter frame leaves no residue
	buf.WriteString(strings.ReplaceAll(frame, "\n", "\033[K\n"))
	buf.WriteString("\033[J")

	_, err = td.config.Out.Write(buf.Bytes())
	return err
}

// Frame renders the visible content of one frame without cursor control
func (td *TerminalDisplay) Frame(state ViewState) (string, error) {
	if state.ShowHelp {
		return td.renderHelp(), nil
	}

	width := layout.Sizer{}.ResolveWidth(td.config.Width)
	style := state.LayoutStyle
	if width < layout.CompactBelow {
		style = layout.LayoutMinimal
	}

	var buf bytes.Buffer
	strategy := layout.GetLayoutStrategy(style)
	err := strategy.Render(&buf, state.Set, layout.RenderParams{
		Width:      width,
		LabelWidth: td.config.LabelWidth,
		Zoom:       state.Zoom,
		Color:      td.config.Color,
		Details:    state.Details,
	})
	if err != nil {
		return "", err
	}

	buf.WriteString("\n")
	buf.WriteString(td.statusLine(state))
	buf.WriteString("\n")
	return buf.String(), nil
}

func (td *TerminalDisplay) statusLine(state ViewState) string {
	parts := []string{
		state.File,
		fmt.Sprintf("%d timelines", state.Set.Len()),
	}
	if state.Set.HasData() {
		parts = append(parts, "max "+util.FormatMillis(state.Set.MaxValue))
	}
	parts = append(parts,
		fmt.Sprintf("zoom %.0f%%", state.Zoom),
		"reloaded "+td.config.Clock.Format(state.LastReload, "15:04:05"),
	)
	if state.Paused {
		parts = append(parts, util.Colorize("paused", "yellow", td.config.Color))
	}
	line := strings.Join(parts, " | ")
	if state.LastError != nil {
		line += "\n" + util.Colorize("error: "+state.LastError.Error(), "red", td.config.Color)
	}
	return line + "\n" + util.Colorize("+/- zoom  0 reset  t layout  d details  r reload  p pause  h help  q quit", "gray", td.config.Color)
}

func (td *TerminalDisplay) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(util.Styled("Perf Waterfall - Help", td.config.Color, util.ColorBold, util.ColorMagenta) + "\n")
	sb.WriteString(strings.Repeat("═", 60) + "\n\n")
	sb.WriteString("Keyboard Shortcuts:\n\n")
	sb.WriteString("  + / =       - Zoom in (x1.1)\n")
	sb.WriteString("  -           - Zoom out (x0.9)\n")
	sb.WriteString("  0           - Reset zoom to 100%\n")
	sb.WriteString("  t           - Change layout style (Full → Minimal)\n")
	sb.WriteString("  d           - Show or hide per-phase durations\n")
	sb.WriteString("  r           - Reload the snapshot now\n")
	sb.WriteString("  p           - Pause/unpause reloading on file changes\n")
	sb.WriteString("  h / ?       - Show this help\n")
	sb.WriteString("  q/Esc/Ctrl+C - Quit the program\n\n")
	sb.WriteString(strings.Repeat("═", 60) + "\n")
	sb.WriteString("Press 'h' to return...\n")
	return sb.String()
}
