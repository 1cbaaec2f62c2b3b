package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorCode(t *testing.T) {
	assert.Equal(t, ColorRed, ColorCode("red"))
	assert.Equal(t, ColorGreen, ColorCode("Green"))
	assert.Equal(t, ColorGray, ColorCode("grey"))
	assert.Empty(t, ColorCode("chartreuse"))

	assert.True(t, IsKnownColor("YELLOW"))
	assert.False(t, IsKnownColor(""))
}

func TestColorize(t *testing.T) {
	assert.Equal(t, ColorBlue+"bar"+ColorReset, Colorize("bar", "blue", true))
	assert.Equal(t, "bar", Colorize("bar", "blue", false))
	assert.Equal(t, "bar", Colorize("bar", "chartreuse", true))
}

func TestColorizeBlock(t *testing.T) {
	assert.Equal(t, "\033[41m\033[30mcfg"+ColorReset, ColorizeBlock("cfg", "red", true))
	assert.Equal(t, "cfg", ColorizeBlock("cfg", "red", false))
	assert.Equal(t, "cfg", ColorizeBlock("cfg", "chartreuse", true))
}

func TestStyled(t *testing.T) {
	assert.Equal(t, ColorBold+ColorMagenta+"title"+ColorReset, Styled("title", true, ColorBold, ColorMagenta))
	assert.Equal(t, "title", Styled("title", false, ColorBold))
	assert.Equal(t, "title", Styled("title", true))
}

func TestGetDisplayWidth(t *testing.T) {
	assert.Equal(t, 10, GetDisplayWidth("entryPoint"))
	assert.Equal(t, 4, GetDisplayWidth("页面"))
}
