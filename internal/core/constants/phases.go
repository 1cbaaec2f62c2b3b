package constants

import "math"

// KeySeparator splits a composite metric key into entity and phase
const KeySeparator = "-"

// Phase colors
const (
	ColorRed    = "red"
	ColorYellow = "yellow"
	ColorBlue   = "blue"
	ColorGreen  = "green"
)

// RelativePhase describes a phase measured as a delta from another phase
type RelativePhase struct {
	Name        string
	Predecessor string
	Color       string
}

// DefaultRelativePhases is the reference phase-dependency table. Phases not
// listed here are absolute offsets from navigation start.
var DefaultRelativePhases = []RelativePhase{
	{Name: "config", Predecessor: "loading", Color: ColorRed},
	{Name: "script", Predecessor: "config", Color: ColorYellow},
	{Name: "connect", Predecessor: "connecting", Color: ColorBlue},
	{Name: "render", Predecessor: "rendering", Color: ColorGreen},
	{Name: "render2", Predecessor: "rendering2", Color: ColorGreen},
	{Name: "render3", Predecessor: "rendering3", Color: ColorGreen},
}

// View zoom, in percent of the available bar width
const (
	DefaultZoom = 100.0
	MinZoom     = 10.0
	MaxZoom     = 1000.0
	ZoomInStep  = 1.1
	ZoomOutStep = 0.9
)

// ClampZoom limits a zoom percent to [MinZoom, MaxZoom]; NaN and values <= 0
// select DefaultZoom
func ClampZoom(percent float64) float64 {
	if math.IsNaN(percent) || percent <= 0 {
		return DefaultZoom
	}
	return math.Max(MinZoom, math.Min(MaxZoom, percent))
}
