package watch

import (
	"errors"
	"time"

	"github.com/penwyp/go-perf-waterfall/internal/core/constants"
	"github.com/penwyp/go-perf-waterfall/internal/core/phase"
)

// WatchConfig contains configuration for the watch command
type WatchConfig struct {
	// Snapshot file to follow
	File string

	// Phase table; nil selects the default table
	Table *phase.Table

	// Display settings
	Timezone   string
	Width      int
	LabelWidth int
	Zoom       float64
	Color      bool
	Details    bool
	Minimal    bool

	// Refresh settings
	UIRefreshInterval time.Duration
	ReloadDebounce    time.Duration
	PollInterval      time.Duration
}

// Validate checks if the configuration is valid and fills in defaults
func (c *WatchConfig) Validate() error {
	if c.File == "" {
		return errors.New("snapshot file is required")
	}
	if c.Table == nil {
		c.Table = phase.Default()
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Zoom == 0 {
		c.Zoom = constants.DefaultZoom
	}
	if c.UIRefreshInterval <= 0 {
		c.UIRefreshInterval = constants.DefaultUIRefreshInterval
	}
	if c.UIRefreshInterval < constants.MinUIRefreshInterval {
		c.UIRefreshInterval = constants.MinUIRefreshInterval
	}
	if c.ReloadDebounce <= 0 {
		c.ReloadDebounce = constants.ReloadDebounce
	}
	if c.PollInterval <= 0 {
		c.PollInterval = constants.DefaultPollInterval
	}
	return nil
}
