package runner

import (
	"math"
	"testing"
)

func TestPlayerJumpImpulse(t *testing.T) {
	p := NewPlayer(50, 187, 33, 13)

	p.Jump(-15)
	if p.VelY != -15 {
		t.Errorf("VelY = %g after jump, expected -15", p.VelY)
	}
	if !p.Jumping {
		t.Error("Jumping should be true after jump")
	}
}

func TestPlayerNoDoubleJump(t *testing.T) {
	p := NewPlayer(50, 187, 33, 13)

	p.Jump(-15)
	p.ApplyGravity(1)
	velBefore := p.VelY

	// Second jump before landing must be a no-op
	p.Jump(-15)
	if p.VelY != velBefore {
		t.Errorf("mid-air jump changed VelY: %g -> %g", velBefore, p.VelY)
	}
}

func TestPlayerGravityIntegration(t *testing.T) {
	p := NewPlayer(50, 100, 33, 13)
	p.VelY = -5

	p.ApplyGravity(1)
	if p.VelY != -4 {
		t.Errorf("VelY = %g, expected -4", p.VelY)
	}
	if p.Y != 96 {
		t.Errorf("Y = %g, expected 96", p.Y)
	}

	p.ApplyGravity(1)
	if p.VelY != -3 || p.Y != 93 {
		t.Errorf("after second tick: VelY = %g, Y = %g, expected -3, 93", p.VelY, p.Y)
	}
}

func TestPlayerJumpArcIsParabolic(t *testing.T) {
	p := NewPlayer(50, 187, 33, 13)
	p.Jump(-15)

	// Rising: y decreases by shrinking amounts until velocity flips sign
	prevY := p.Y
	prevDelta := math.Inf(-1)
	for p.VelY < 0 {
		p.ApplyGravity(1)
		delta := p.Y - prevY
		if delta <= prevDelta {
			t.Fatalf("ascent should decelerate: delta %g then %g", prevDelta, delta)
		}
		prevDelta = delta
		prevY = p.Y
	}

	if p.Y >= 187 {
		t.Errorf("apex should be above spawn height, got y = %g", p.Y)
	}
}

func TestPlayerStopJump(t *testing.T) {
	p := NewPlayer(50, 187, 33, 13)
	p.Jump(-15)

	p.StopJump()
	if p.Jumping {
		t.Error("Jumping should be false after StopJump")
	}
}

func TestPlayerRect(t *testing.T) {
	p := NewPlayer(50, 187, 33, 13)
	r := p.Rect()
	if r.X != 50 || r.Y != 187 || r.W != 33 || r.H != 13 {
		t.Errorf("Rect() = %+v, expected {50 187 33 13}", r)
	}
}
