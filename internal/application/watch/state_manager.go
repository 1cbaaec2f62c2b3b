package watch

import (
	"sync"
	"time"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/display"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/interaction"
)

// InteractionState is the view state driven by the keyboard
type InteractionState struct {
	Zoom        interaction.Zoom
	LayoutStyle int
	Details     bool
	Paused      bool
	ShowHelp    bool
}

// StateManager manages application state in a thread-safe manner
type StateManager struct {
	mu sync.RWMutex

	set        *model.TimelineSet
	lastReload time.Time
	lastError  error

	interactionState InteractionState
}

// NewStateManager creates a new StateManager instance
func NewStateManager(initial InteractionState) *StateManager {
	return &StateManager{interactionState: initial}
}

// GetTimelines returns the current timeline set
func (sm *StateManager) GetTimelines() *model.TimelineSet {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.set
}

// SetTimelines replaces the current set and clears the last error
func (sm *StateManager) SetTimelines(set *model.TimelineSet, at time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.set = set
	sm.lastReload = at
	sm.lastError = nil
}

// SetError records a failed reload; the previous set stays visible
func (sm *StateManager) SetError(err error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.lastError = err
}

// GetError returns the last reload error, if any
func (sm *StateManager) GetError() error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.lastError
}

// GetInteractionState returns a copy of the interaction state
func (sm *StateManager) GetInteractionState() InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.interactionState
}

// UpdateInteractionState applies fn under the write lock
func (sm *StateManager) UpdateInteractionState(fn func(*InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	fn(&sm.interactionState)
}

// ApplyAction updates the interaction state for a key action and reports
// whether the action was handled here
func (sm *StateManager) ApplyAction(action interaction.Action) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	s := &sm.interactionState
	switch action {
	case interaction.ActionZoomIn, interaction.ActionZoomOut, interaction.ActionZoomReset:
		s.Zoom = s.Zoom.Apply(action)
	case interaction.ActionToggleLayout:
		s.LayoutStyle = (s.LayoutStyle + 1) % 2
	case interaction.ActionToggleDetails:
		s.Details = !s.Details
	case interaction.ActionTogglePause:
		s.Paused = !s.Paused
	case interaction.ActionToggleHelp:
		s.ShowHelp = !s.ShowHelp
	default:
		return false
	}
	return true
}

// ViewState snapshots everything the display needs for one frame
func (sm *StateManager) ViewState(file string) display.ViewState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	s := sm.interactionState
	return display.ViewState{
		Set:         sm.set,
		File:        file,
		Zoom:        s.Zoom.Percent(),
		LayoutStyle: s.LayoutStyle,
		Details:     s.Details,
		Paused:      s.Paused,
		ShowHelp:    s.ShowHelp,
		LastReload:  sm.lastReload,
		LastError:   sm.lastError,
	}
}
