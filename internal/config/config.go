// Package config provides YAML-based configuration for the labyrinth game:
// the difficulty tier table, race and round timing, animation tuning and
// key-repeat timing.
package config

import "time"

// Config contains all configuration for the labyrinth game.
type Config struct {
	Difficulties []Tier          `yaml:"difficulties"`
	Race         RaceConfig      `yaml:"race"`
	Round        RoundConfig     `yaml:"round"`
	Animation    AnimationConfig `yaml:"animation"`
	Input        InputConfig     `yaml:"input"`
	Sprites      SpriteConfig    `yaml:"sprites"`
}

// Tier is one entry of the difficulty table.
type Tier struct {
	Name string `yaml:"name"`
	Cols int    `yaml:"cols"`
	Rows int    `yaml:"rows"`
}

// RaceConfig defines the timed race mode.
type RaceConfig struct {
	TimeBudget     time.Duration `yaml:"time_budget"`
	TierThresholds []int         `yaml:"tier_thresholds"` // completed counts that unlock tier 1, 2, ...
}

// RoundConfig defines round clock and transition timing.
type RoundConfig struct {
	TransitionDelay time.Duration `yaml:"transition_delay"`
	ClockInterval   time.Duration `yaml:"clock_interval"`
}

// AnimationConfig defines player interpolation and cosmetic effects.
type AnimationConfig struct {
	StepRate           float64 `yaml:"step_rate"`            // progress per second
	FastStepRate       float64 `yaml:"fast_step_rate"`       // progress per second while a key is held
	FastAcceptProgress float64 `yaml:"fast_accept_progress"` // progress needed to chain a held move
	TrailLength        int     `yaml:"trail_length"`
	TrailDecay         float64 `yaml:"trail_decay"` // opacity lost per second
	ParticleCount      int     `yaml:"particle_count"`
	Gravity            float64 `yaml:"gravity"` // cells per second squared
}

// InputConfig defines the key-repeat state machine timing.
type InputConfig struct {
	InitialDelay   time.Duration `yaml:"initial_delay"`
	RepeatInterval time.Duration `yaml:"repeat_interval"`
	ArmTimeout     time.Duration `yaml:"arm_timeout"`   // unconfirmed hold is dropped after this
	ReleaseAfter   time.Duration `yaml:"release_after"` // confirmed hold is dropped after this much silence
}

// SpriteConfig points at an optional sprite file.
type SpriteConfig struct {
	Path string `yaml:"path"`
}

// TierNames returns the names of all tiers, easiest first.
func (c Config) TierNames() []string {
	names := make([]string, len(c.Difficulties))
	for i, t := range c.Difficulties {
		names[i] = t.Name
	}
	return names
}
