package watch

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/interaction"
	"github.com/penwyp/go-perf-waterfall/internal/presentation/layout"
	"github.com/stretchr/testify/assert"
)

func TestStateManagerTimelinesAndErrors(t *testing.T) {
	sm := NewStateManager(InteractionState{})
	set := &model.TimelineSet{MaxValue: 1}
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	sm.SetError(errors.New("first load failed"))
	assert.Error(t, sm.GetError())

	sm.SetTimelines(set, at)
	assert.Same(t, set, sm.GetTimelines())
	assert.NoError(t, sm.GetError())

	sm.SetError(errors.New("broken"))
	view := sm.ViewState("perf.json")
	assert.Same(t, set, view.Set, "a failed reload keeps the previous set")
	assert.Equal(t, at, view.LastReload)
	assert.EqualError(t, view.LastError, "broken")
	assert.Equal(t, "perf.json", view.File)
}

func TestStateManagerApplyAction(t *testing.T) {
	sm := NewStateManager(InteractionState{Zoom: interaction.NewZoom(0)})

	assert.True(t, sm.ApplyAction(interaction.ActionZoomIn))
	assert.InDelta(t, 110.0, sm.ViewState("").Zoom, 1e-9)

	assert.True(t, sm.ApplyAction(interaction.ActionZoomReset))
	assert.Equal(t, 100.0, sm.ViewState("").Zoom)

	assert.True(t, sm.ApplyAction(interaction.ActionToggleLayout))
	assert.Equal(t, layout.LayoutMinimal, sm.GetInteractionState().LayoutStyle)
	assert.True(t, sm.ApplyAction(interaction.ActionToggleLayout))
	assert.Equal(t, layout.LayoutFull, sm.GetInteractionState().LayoutStyle)

	assert.True(t, sm.ApplyAction(interaction.ActionToggleDetails))
	assert.True(t, sm.ApplyAction(interaction.ActionTogglePause))
	assert.True(t, sm.ApplyAction(interaction.ActionToggleHelp))
	state := sm.GetInteractionState()
	assert.True(t, state.Details)
	assert.True(t, state.Paused)
	assert.True(t, state.ShowHelp)

	assert.False(t, sm.ApplyAction(interaction.ActionQuit))
	assert.False(t, sm.ApplyAction(interaction.ActionReload))
}

func TestStateManagerConcurrentAccess(t *testing.T) {
	sm := NewStateManager(InteractionState{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sm.ApplyAction(interaction.ActionZoomIn)
				sm.SetTimelines(&model.TimelineSet{}, time.Now())
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = sm.ViewState("f")
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, sm.ViewState("").Zoom, 1000.0)
}
