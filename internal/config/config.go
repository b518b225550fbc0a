// Package config provides YAML-based gameplay configuration loading and
// difficulty management.
package config

// ArkanoidConfig contains all tunable gameplay parameters.
type ArkanoidConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines ball and paddle motion parameters.
// Speeds are in playfield cells per second.
type PhysicsConfig struct {
	BallSpeed     float64 `yaml:"ball_speed"`     // nominal launch speed
	MinBallSpeed  float64 `yaml:"min_ball_speed"` // lower clamp on ball speed
	MaxBallSpeed  float64 `yaml:"max_ball_speed"` // upper clamp on ball speed
	PaddleSpeed   float64 `yaml:"paddle_speed"`
	SteerStrength float64 `yaml:"steer_strength"` // paddle steering multiplier
	BallRadius    float64 `yaml:"ball_radius"`    // in cells
}

// PaddleConfig defines paddle dimensions.
type PaddleConfig struct {
	Width float64 `yaml:"width"` // in cells
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives           int `yaml:"lives"`
	ServeDelayTicks int `yaml:"serve_delay_ticks"` // delay before serving after a miss
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
