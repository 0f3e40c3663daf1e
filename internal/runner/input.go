package runner

import "github.com/vovakirdan/boxrunner/internal/core"

// KeyEventKind distinguishes key presses from releases.
type KeyEventKind int

const (
	KeyDown KeyEventKind = iota
	KeyUp
)

// KeyEvent is a discrete keyboard event as delivered by the input source.
type KeyEvent struct {
	Kind KeyEventKind
	Rune rune
}

// Mapper translates key events into game actions. While the game is over,
// any key press maps to restart, overriding the jump/fall bindings.
// Quit always wins, even over restart. Unrecognized keys map to no action.
type Mapper struct{}

// NewMapper creates a key mapper with the default bindings.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map returns the action for a key event given the current game-over state.
func (m *Mapper) Map(ev KeyEvent, gameOver bool) core.Action {
	if ev.Kind == KeyDown && (ev.Rune == 'q' || ev.Rune == 'Q') {
		return core.ActionQuit
	}

	if gameOver {
		if ev.Kind == KeyDown {
			return core.ActionRestart
		}
		return core.ActionNone
	}

	switch ev.Kind {
	case KeyDown:
		switch ev.Rune {
		case 'w', 'W':
			return core.ActionJump
		case 's', 'S':
			return core.ActionFastFallOn
		}
	case KeyUp:
		switch ev.Rune {
		case 's', 'S':
			return core.ActionFastFallOff
		}
	}
	return core.ActionNone
}
