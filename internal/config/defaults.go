package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default gameplay configuration.
// Kept in sync with defaults/arkanoid.yaml; used as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Physics: PhysicsConfig{
			BallSpeed:     18.0,
			MinBallSpeed:  10.0,
			MaxBallSpeed:  40.0,
			PaddleSpeed:   30.0,
			SteerStrength: 1.0,
			BallRadius:    0.45,
		},
		Paddle: PaddleConfig{
			Width: 8.0,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			ServeDelayTicks: 60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
