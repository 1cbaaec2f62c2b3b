package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected *KeyEvent
	}{
		{"regular_char", []byte{'a'}, &KeyEvent{Key: 'a', Type: KeyChar}},
		{"plus", []byte{'+'}, &KeyEvent{Key: '+', Type: KeyChar}},
		{"ctrl_c", []byte{3}, &KeyEvent{Key: 3, Type: KeyChar}},
		{"escape", []byte{27}, &KeyEvent{Key: 27, Type: KeyEscape}},
		{"arrow_key", []byte{27, '[', 'A'}, nil},
		{"empty", []byte{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseInput(tt.input))
		})
	}
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		event KeyEvent
		want  Action
	}{
		{KeyEvent{Key: 'q'}, ActionQuit},
		{KeyEvent{Key: 3}, ActionQuit},
		{KeyEvent{Key: 27, Type: KeyEscape}, ActionQuit},
		{KeyEvent{Key: '+'}, ActionZoomIn},
		{KeyEvent{Key: '='}, ActionZoomIn},
		{KeyEvent{Key: '-'}, ActionZoomOut},
		{KeyEvent{Key: '0'}, ActionZoomReset},
		{KeyEvent{Key: 't'}, ActionToggleLayout},
		{KeyEvent{Key: 'd'}, ActionToggleDetails},
		{KeyEvent{Key: 'r'}, ActionReload},
		{KeyEvent{Key: 'p'}, ActionTogglePause},
		{KeyEvent{Key: '?'}, ActionToggleHelp},
		{KeyEvent{Key: 'x'}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.want.String()+"_"+string(tt.event.Key), func(t *testing.T) {
			assert.Equal(t, tt.want, ActionForKey(tt.event))
		})
	}
}
