package interaction

import (
	"github.com/penwyp/go-perf-waterfall/internal/core/constants"
)

// Zoom is the view scale of the waterfall, in percent of the available
// width. It only affects rendering.
type Zoom struct {
	percent float64
}

// NewZoom starts at percent, clamped to the allowed range; 0 means the default
func NewZoom(percent float64) Zoom {
	if percent == 0 {
		percent = constants.DefaultZoom
	}
	return Zoom{percent: clampZoom(percent)}
}

// Percent returns the current scale
func (z Zoom) Percent() float64 {
	if z.percent == 0 {
		return constants.DefaultZoom
	}
	return z.percent
}

// In scales up by ZoomInStep
func (z Zoom) In() Zoom {
	return Zoom{percent: clampZoom(z.Percent() * constants.ZoomInStep)}
}

// Out scales down by ZoomOutStep
func (z Zoom) Out() Zoom {
	return Zoom{percent: clampZoom(z.Percent() * constants.ZoomOutStep)}
}

// Reset returns the default scale
func (z Zoom) Reset() Zoom {
	return Zoom{percent: constants.DefaultZoom}
}

// Apply returns the zoom after a zoom action; other actions leave it unchanged
func (z Zoom) Apply(action Action) Zoom {
	switch action {
	case ActionZoomIn:
		return z.In()
	case ActionZoomOut:
		return z.Out()
	case ActionZoomReset:
		return z.Reset()
	default:
		return z
	}
}

func clampZoom(p float64) float64 {
	if p < 0 {
		return constants.MinZoom
	}
	return constants.ClampZoom(p)
}
