package watch

import (
	"testing"
	"time"

	"github.com/penwyp/go-perf-waterfall/internal/core/constants"
	"github.com/penwyp/go-perf-waterfall/internal/core/phase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfigValidate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config := &WatchConfig{File: "perf.json"}
		require.NoError(t, config.Validate())

		assert.Same(t, phase.Default(), config.Table)
		assert.Equal(t, "Local", config.Timezone)
		assert.Equal(t, constants.DefaultZoom, config.Zoom)
		assert.Equal(t, constants.DefaultUIRefreshInterval, config.UIRefreshInterval)
		assert.Equal(t, constants.ReloadDebounce, config.ReloadDebounce)
		assert.Equal(t, constants.DefaultPollInterval, config.PollInterval)
	})

	t.Run("keeps_explicit_values", func(t *testing.T) {
		config := &WatchConfig{File: "perf.json", Timezone: "UTC", Zoom: 250, UIRefreshInterval: time.Second}
		require.NoError(t, config.Validate())

		assert.Equal(t, "UTC", config.Timezone)
		assert.Equal(t, 250.0, config.Zoom)
		assert.Equal(t, time.Second, config.UIRefreshInterval)
	})

	t.Run("refresh_floor", func(t *testing.T) {
		config := &WatchConfig{File: "perf.json", UIRefreshInterval: time.Millisecond}
		require.NoError(t, config.Validate())
		assert.Equal(t, constants.MinUIRefreshInterval, config.UIRefreshInterval)
	})

	t.Run("non_positive_intervals", func(t *testing.T) {
		config := &WatchConfig{
			File:              "perf.json",
			UIRefreshInterval: -time.Second,
			ReloadDebounce:    -time.Millisecond,
			PollInterval:      -time.Second,
		}
		require.NoError(t, config.Validate())

		assert.Equal(t, constants.DefaultUIRefreshInterval, config.UIRefreshInterval)
		assert.Equal(t, constants.ReloadDebounce, config.ReloadDebounce)
		assert.Equal(t, constants.DefaultPollInterval, config.PollInterval)
	})

	t.Run("file_required", func(t *testing.T) {
		assert.Error(t, (&WatchConfig{}).Validate())
	})
}
