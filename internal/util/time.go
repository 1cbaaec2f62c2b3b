package util

import (
	"fmt"
	"sync"
	"time"
)

// Clock formats wall-clock times in a configured timezone
type Clock struct {
	mu       sync.RWMutex
	location *time.Location
}

// NewClock creates a clock for timezone; "" and "Local" use the system zone
func NewClock(timezone string) (*Clock, error) {
	c := &Clock{}
	if err := c.SetTimezone(timezone); err != nil {
		return nil, err
	}
	return c, nil
}

// SetTimezone updates the timezone of the clock
func (c *Clock) SetTimezone(timezone string) error {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Asia/Shanghai, Europe/London", timezone, err)
		}
		loc = l
	}

	c.mu.Lock()
	c.location = loc
	c.mu.Unlock()
	return nil
}

// Location returns the configured timezone
func (c *Clock) Location() *time.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.location
}

// Now returns the current time in the configured timezone
func (c *Clock) Now() time.Time {
	return time.Now().In(c.Location())
}

// Format formats t in the configured timezone; the zero time renders as "-"
func (c *Clock) Format(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(c.Location()).Format(layout)
}
