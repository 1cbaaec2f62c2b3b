package interaction

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
)

const (
	keyCtrlC  = 3
	keyEscape = 27
)

// parseInput parses raw keyboard input
func parseInput(buf []byte) *KeyEvent {
	if len(buf) == 0 {
		return nil
	}

	if buf[0] == keyCtrlC {
		return &KeyEvent{Key: keyCtrlC, Type: KeyChar}
	}

	// Arrow keys and other escape sequences are ignored
	if buf[0] == keyEscape {
		if len(buf) == 1 {
			return &KeyEvent{Key: keyEscape, Type: KeyEscape}
		}
		return nil
	}

	return &KeyEvent{Key: rune(buf[0]), Type: KeyChar}
}

// Action is what a key asks the live view to do
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
	ActionToggleLayout
	ActionToggleDetails
	ActionReload
	ActionTogglePause
	ActionToggleHelp
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionZoomIn:
		return "zoom in"
	case ActionZoomOut:
		return "zoom out"
	case ActionZoomReset:
		return "zoom reset"
	case ActionToggleLayout:
		return "toggle layout"
	case ActionToggleDetails:
		return "toggle details"
	case ActionReload:
		return "reload"
	case ActionTogglePause:
		return "toggle pause"
	case ActionToggleHelp:
		return "toggle help"
	default:
		return "none"
	}
}

// ActionForKey maps a key press to an action
func ActionForKey(event KeyEvent) Action {
	if event.Type == KeyEscape {
		return ActionQuit
	}

	switch event.Key {
	case 'q', 'Q', keyCtrlC:
		return ActionQuit
	case '+', '=':
		return ActionZoomIn
	case '-', '_':
		return ActionZoomOut
	case '0':
		return ActionZoomReset
	case 't', 'T':
		return ActionToggleLayout
	case 'd', 'D':
		return ActionToggleDetails
	case 'r', 'R':
		return ActionReload
	case 'p', 'P':
		return ActionTogglePause
	case 'h', 'H', '?':
		return ActionToggleHelp
	default:
		return ActionNone
	}
}
