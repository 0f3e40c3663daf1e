package runner

import (
	"math/rand"

	"github.com/vovakirdan/boxrunner/internal/config"
)

// Generator is the stochastic obstacle spawner. Arrivals approximate a
// Poisson process with a hard minimum spacing and a variable gap; floating
// obstacles join the mix only past the score threshold.
type Generator struct {
	rng *rand.Rand
	cfg config.RunnerConfig
}

// NewGenerator creates a generator drawing from the given RNG.
func NewGenerator(rng *rand.Rand, cfg config.RunnerConfig) *Generator {
	return &Generator{rng: rng, cfg: cfg}
}

// Step runs one spawn attempt. rightmost is the most recently spawned
// obstacle still alive (nil if none). Returns the spawned obstacle or nil.
func (g *Generator) Step(score int, rightmost *Obstacle) *Obstacle {
	obs := g.cfg.Obstacles

	if g.rng.Float64() >= obs.SpawnChance {
		return nil
	}
	// Never spawn closer than the minimum gap to the previous obstacle.
	if rightmost != nil && rightmost.X+obs.MinGap >= g.cfg.World.Width {
		return nil
	}

	x := g.cfg.World.Width
	if rightmost != nil {
		gap := obs.MinGap + g.rng.Float64()*(obs.MaxGap-obs.MinGap)
		x = rightmost.X + gap
	}

	y := g.cfg.World.GroundY()
	if score >= obs.FloatScoreThreshold && g.rng.Float64() < obs.FloatChance {
		y = obs.FloatMinY + g.rng.Float64()*(g.cfg.World.GroundY()-obs.FloatMinY)
	}

	return NewObstacle(x, y, obs.Width, obs.Height, obs.VelocityX, obs.AccelX)
}
