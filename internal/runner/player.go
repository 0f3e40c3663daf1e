// Package runner implements the side-scrolling obstacle runner simulation.
// The core is pure: no terminal, no timers, no persistence. The platform
// drives it one fixed tick at a time and reads frame snapshots back.
package runner

import "github.com/vovakirdan/boxrunner/internal/core"

// Player is the player-controlled box. Position is the top-left corner in
// world units; Y grows downward.
type Player struct {
	X, Y    float64
	W, H    float64
	VelY    float64
	Jumping bool
}

// NewPlayer creates a player resting at the given spawn position.
func NewPlayer(x, y, w, h float64) Player {
	return Player{X: x, Y: y, W: w, H: h}
}

// Jump applies the fixed upward impulse. No-op while already airborne, which
// prevents mid-air double jumps from chaining into infinite ascent.
func (p *Player) Jump(impulse float64) {
	if p.Jumping {
		return
	}
	p.VelY = impulse
	p.Jumping = true
}

// ApplyGravity integrates one tick of vertical motion. Called once per tick
// unconditionally; the repeated small increments produce the jump arc.
func (p *Player) ApplyGravity(g float64) {
	p.VelY += g
	p.Y += p.VelY
}

// StopJump clears the airborne flag. Invoked by ground-contact handling,
// never by the jump key.
func (p *Player) StopJump() {
	p.Jumping = false
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}
