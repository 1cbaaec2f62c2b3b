package util

import (
	"fmt"
	"math"
	"strconv"
)

// FormatMillis renders a millisecond value the way the waterfall labels show it
func FormatMillis(ms float64) string {
	switch {
	case math.IsNaN(ms) || math.IsInf(ms, 0):
		return "-"
	case math.Abs(ms) < 10:
		return fmt.Sprintf("%.2fms", ms)
	case math.Abs(ms) < 1000:
		return fmt.Sprintf("%.1fms", ms)
	default:
		return fmt.Sprintf("%.2fs", ms/1000)
	}
}

// FormatFloat renders a raw value with the shortest exact representation
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent renders a percentage with one decimal
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
