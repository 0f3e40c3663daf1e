package runner

import "github.com/vovakirdan/boxrunner/internal/core"

// Obstacle is a box moving leftward across the viewport. The two variants
// (ground and floating) differ only in spawn-time height.
type Obstacle struct {
	X, Y   float64
	W, H   float64
	VelX   float64
	AccelX float64

	// Spawn-time kinematics, retained so Reset can restore them. The
	// baseline flow discards culled obstacles instead of pooling, but the
	// hook stays available.
	initVelX   float64
	initAccelX float64
}

// NewObstacle creates an obstacle with the given spawn kinematics.
func NewObstacle(x, y, w, h, velX, accelX float64) *Obstacle {
	return &Obstacle{
		X: x, Y: y, W: w, H: h,
		VelX: velX, AccelX: accelX,
		initVelX: velX, initAccelX: accelX,
	}
}

// Move advances one tick of kinematics. Acceleration is negative and never
// clamped: leftward speed grows without bound for as long as the obstacle
// is on screen.
func (o *Obstacle) Move() {
	o.VelX += o.AccelX
	o.X += o.VelX
}

// Reset restores the spawn-time velocity and acceleration.
func (o *Obstacle) Reset() {
	o.VelX = o.initVelX
	o.AccelX = o.initAccelX
}

// OffScreen reports whether the trailing edge has passed the left boundary.
func (o *Obstacle) OffScreen() bool {
	return o.X+o.W <= 0
}

// Rect returns the obstacle's bounding box.
func (o *Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}
