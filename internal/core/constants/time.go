package constants

import "time"

const (
	// Live view refresh
	DefaultUIRefreshInterval = 500 * time.Millisecond
	MinUIRefreshInterval     = 100 * time.Millisecond

	// File change debouncing; editors often emit several writes per save
	ReloadDebounce = 150 * time.Millisecond

	// Stat-based reload check, for filesystems without change notifications
	DefaultPollInterval = 2 * time.Second
)
