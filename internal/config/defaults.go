package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldParams{
			Width:        800,
			Height:       300,
			GroundOffset: 113,
			TickRate:     30,
		},
		Physics: PhysicsParams{
			Gravity:            1.0,
			JumpImpulse:        -15.0,
			FastFallMultiplier: 5.0,
		},
		Player: PlayerParams{
			X:      50,
			Width:  33,
			Height: 13,
		},
		Obstacles: ObstacleParams{
			Width:               33,
			Height:              13,
			VelocityX:           -10.0,
			AccelX:              -0.1,
			SpawnChance:         0.5,
			MinGap:              200,
			MaxGap:              300,
			FloatScoreThreshold: 200,
			FloatChance:         0.5,
			FloatMinY:           100,
		},
	}
}
