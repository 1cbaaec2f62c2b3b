//go:build !linux && !darwin

package interaction

import "errors"

// KeyboardReader is unavailable on this platform
type KeyboardReader struct {
	input chan KeyEvent
}

func NewKeyboardReader() (*KeyboardReader, error) {
	return nil, errors.New("raw keyboard input is not supported on this platform")
}

func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

func (kr *KeyboardReader) Close() error {
	return nil
}
