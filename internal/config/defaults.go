package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/labyrinth.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/labyrinth.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Difficulties: []Tier{
			{Name: "easy", Cols: 11, Rows: 7},
			{Name: "medium", Cols: 17, Rows: 11},
			{Name: "hard", Cols: 25, Rows: 15},
		},
		Race: RaceConfig{
			TimeBudget:     90 * time.Second,
			TierThresholds: []int{2, 4},
		},
		Round: RoundConfig{
			TransitionDelay: 600 * time.Millisecond,
			ClockInterval:   100 * time.Millisecond,
		},
		Animation: AnimationConfig{
			StepRate:           9.0,
			FastStepRate:       18.0,
			FastAcceptProgress: 0.5,
			TrailLength:        12,
			TrailDecay:         2.5,
			ParticleCount:      60,
			Gravity:            30.0,
		},
		Input: InputConfig{
			InitialDelay:   180 * time.Millisecond,
			RepeatInterval: 80 * time.Millisecond,
			ArmTimeout:     600 * time.Millisecond,
			ReleaseAfter:   160 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
