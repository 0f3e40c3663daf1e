// Package config provides YAML-based game configuration loading for the
// runner. All world constants live here; the defaults are the tuned values
// the fixed 30 Hz step was balanced against.
package config

import "fmt"

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	World     WorldParams    `yaml:"world"`
	Physics   PhysicsParams  `yaml:"physics"`
	Player    PlayerParams   `yaml:"player"`
	Obstacles ObstacleParams `yaml:"obstacles"`
}

// WorldParams defines the fixed viewport geometry and tick rate.
// Coordinates are world units; the terminal projection never feeds back
// into these.
type WorldParams struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from viewport bottom to the ground contact line
	TickRate     int     `yaml:"tick_rate"`
}

// GroundY returns the y-coordinate of the ground contact line.
func (w WorldParams) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// GroundBandY returns the top of the drawn ground band (bottom third).
func (w WorldParams) GroundBandY() float64 {
	return w.Height * 2 / 3
}

// PhysicsParams defines player physics constants.
type PhysicsParams struct {
	Gravity            float64 `yaml:"gravity"`
	JumpImpulse        float64 `yaml:"jump_impulse"`
	FastFallMultiplier float64 `yaml:"fast_fall_multiplier"`
}

// PlayerParams defines the player box.
type PlayerParams struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleParams defines obstacle dimensions, kinematics and spawning.
type ObstacleParams struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	VelocityX float64 `yaml:"velocity_x"`
	AccelX    float64 `yaml:"accel_x"`

	SpawnChance float64 `yaml:"spawn_chance"` // Bernoulli gate per tick
	MinGap      float64 `yaml:"min_gap"`      // Hard minimum spacing between spawns
	MaxGap      float64 `yaml:"max_gap"`      // Gap drawn uniformly from [min_gap, max_gap)

	FloatScoreThreshold int     `yaml:"float_score_threshold"` // Floating obstacles appear at this score
	FloatChance         float64 `yaml:"float_chance"`          // Bernoulli floating-vs-ground past the threshold
	FloatMinY           float64 `yaml:"float_min_y"`           // Floating height drawn from [float_min_y, ground line)
}

// Validate checks the configuration for values the simulation cannot run
// with. Called once at construction; nothing mid-run returns errors.
func (c RunnerConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.World.GroundOffset <= 0 || c.World.GroundOffset >= c.World.Height {
		return fmt.Errorf("config: ground_offset must be within (0, %g), got %g", c.World.Height, c.World.GroundOffset)
	}
	if c.World.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.World.TickRate)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player dimensions must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	}
	if c.Player.X < 0 || c.Player.X >= c.World.Width {
		return fmt.Errorf("config: player x must be within [0, %g), got %g", c.World.Width, c.Player.X)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		return fmt.Errorf("config: obstacle dimensions must be positive, got %gx%g", c.Obstacles.Width, c.Obstacles.Height)
	}
	if c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1 {
		return fmt.Errorf("config: spawn_chance must be within [0, 1], got %g", c.Obstacles.SpawnChance)
	}
	if c.Obstacles.FloatChance < 0 || c.Obstacles.FloatChance > 1 {
		return fmt.Errorf("config: float_chance must be within [0, 1], got %g", c.Obstacles.FloatChance)
	}
	if c.Obstacles.MinGap <= 0 || c.Obstacles.MaxGap < c.Obstacles.MinGap {
		return fmt.Errorf("config: gaps must satisfy 0 < min_gap <= max_gap, got [%g, %g]", c.Obstacles.MinGap, c.Obstacles.MaxGap)
	}
	if c.Obstacles.FloatMinY < 0 || c.Obstacles.FloatMinY >= c.World.GroundY() {
		return fmt.Errorf("config: float_min_y must be within [0, %g), got %g", c.World.GroundY(), c.Obstacles.FloatMinY)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("config: jump_impulse must be negative, got %g", c.Physics.JumpImpulse)
	}
	if c.Physics.FastFallMultiplier < 1 {
		return fmt.Errorf("config: fast_fall_multiplier must be at least 1, got %g", c.Physics.FastFallMultiplier)
	}
	return nil
}
