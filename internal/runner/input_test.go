package runner

import (
	"testing"

	"github.com/vovakirdan/boxrunner/internal/core"
)

func TestMapperBindings(t *testing.T) {
	m := NewMapper()

	tests := []struct {
		name     string
		ev       KeyEvent
		gameOver bool
		expected core.Action
	}{
		{"w down jumps", KeyEvent{KeyDown, 'w'}, false, core.ActionJump},
		{"W down jumps", KeyEvent{KeyDown, 'W'}, false, core.ActionJump},
		{"s down starts fast fall", KeyEvent{KeyDown, 's'}, false, core.ActionFastFallOn},
		{"S down starts fast fall", KeyEvent{KeyDown, 'S'}, false, core.ActionFastFallOn},
		{"s up ends fast fall", KeyEvent{KeyUp, 's'}, false, core.ActionFastFallOff},
		{"S up ends fast fall", KeyEvent{KeyUp, 'S'}, false, core.ActionFastFallOff},
		{"w up is ignored", KeyEvent{KeyUp, 'w'}, false, core.ActionNone},
		{"unrecognized key is ignored", KeyEvent{KeyDown, 'x'}, false, core.ActionNone},
		{"space is ignored while running", KeyEvent{KeyDown, ' '}, false, core.ActionNone},
		{"q down quits", KeyEvent{KeyDown, 'q'}, false, core.ActionQuit},
		{"Q down quits", KeyEvent{KeyDown, 'Q'}, false, core.ActionQuit},
		{"quit beats restart after game over", KeyEvent{KeyDown, 'q'}, true, core.ActionQuit},
		{"q up is ignored", KeyEvent{KeyUp, 'q'}, false, core.ActionNone},
		{"any key down restarts after game over", KeyEvent{KeyDown, 'x'}, true, core.ActionRestart},
		{"jump key also restarts after game over", KeyEvent{KeyDown, 'w'}, true, core.ActionRestart},
		{"fall key also restarts after game over", KeyEvent{KeyDown, 's'}, true, core.ActionRestart},
		{"key up never restarts", KeyEvent{KeyUp, 's'}, true, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Map(tc.ev, tc.gameOver); got != tc.expected {
				t.Errorf("Map(%+v, gameOver=%v) = %v, expected %v", tc.ev, tc.gameOver, got, tc.expected)
			}
		})
	}
}
