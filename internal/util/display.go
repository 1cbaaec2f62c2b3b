package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset   = "\033[0m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorGray    = "\033[90m"
	ColorBold    = "\033[1m"

	ClearScreen       = "\033[2J"
	ClearScrollback   = "\033[3J"
	MoveCursorHome    = "\033[H"
	HideCursor        = "\033[?25l"
	ShowCursor        = "\033[?25h"
	EnterAltScreen    = "\033[?1049h"
	ExitAltScreen     = "\033[?1049l"
	ResetScrollRegion = "\033[r"
)

var namedColors = map[string]string{
	"red":     ColorRed,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"green":   ColorGreen,
	"cyan":    ColorCyan,
	"magenta": ColorMagenta,
	"gray":    ColorGray,
	"grey":    ColorGray,
}

// ColorCode maps a color name from the phase table to an ANSI sequence.
// Unknown names fall back to the default foreground.
func ColorCode(name string) string {
	if code, ok := namedColors[strings.ToLower(name)]; ok {
		return code
	}
	return ""
}

// IsKnownColor reports whether ColorCode has a mapping for name
func IsKnownColor(name string) bool {
	_, ok := namedColors[strings.ToLower(name)]
	return ok
}

// Colorize wraps text in the named color when enabled
func Colorize(text, colorName string, enabled bool) string {
	code := ColorCode(colorName)
	if !enabled || code == "" {
		return text
	}
	return code + text + ColorReset
}

var backgroundColors = map[string]string{
	"red":     "\033[41m",
	"yellow":  "\033[43m",
	"blue":    "\033[44m",
	"green":   "\033[42m",
	"cyan":    "\033[46m",
	"magenta": "\033[45m",
	"gray":    "\033[100m",
	"grey":    "\033[100m",
}

// ColorizeBlock renders text on the named background color with black text
func ColorizeBlock(text, colorName string, enabled bool) string {
	code, ok := backgroundColors[strings.ToLower(colorName)]
	if !enabled || !ok {
		return text
	}
	return code + "\033[30m" + text + ColorReset
}

// Styled applies raw ANSI codes when enabled
func Styled(text string, enabled bool, codes ...string) string {
	if !enabled || len(codes) == 0 {
		return text
	}
	return strings.Join(codes, "") + text + ColorReset
}

// GetDisplayWidth returns the column width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}
