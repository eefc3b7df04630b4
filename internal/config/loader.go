package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "labyrinth.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.labyrinth/configs/labyrinth.yaml ->
// ./configs/labyrinth.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, nil
	}
	return DefaultConfig(), nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configs the game cannot play.
func (c Config) Validate() error {
	var errs []error

	if len(c.Difficulties) != TierCount {
		errs = append(errs, fmt.Errorf("difficulties: want %d tiers, got %d", TierCount, len(c.Difficulties)))
	}
	seen := make(map[string]bool)
	for i, t := range c.Difficulties {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("difficulties[%d]: name is required", i))
		}
		if seen[t.Name] {
			errs = append(errs, fmt.Errorf("difficulties[%d]: duplicate name %q", i, t.Name))
		}
		seen[t.Name] = true
		if t.Cols < 2 || t.Rows < 2 {
			errs = append(errs, fmt.Errorf("difficulties[%d]: size %dx%d is below 2x2", i, t.Cols, t.Rows))
		}
	}

	if c.Race.TimeBudget <= 0 {
		errs = append(errs, errors.New("race.time_budget must be positive"))
	}
	if !sort.IntsAreSorted(c.Race.TierThresholds) {
		errs = append(errs, errors.New("race.tier_thresholds must be ascending"))
	}
	if c.Round.ClockInterval <= 0 {
		errs = append(errs, errors.New("round.clock_interval must be positive"))
	}
	if c.Round.TransitionDelay < 0 {
		errs = append(errs, errors.New("round.transition_delay must not be negative"))
	}

	a := c.Animation
	if a.StepRate <= 0 || a.FastStepRate <= 0 {
		errs = append(errs, errors.New("animation step rates must be positive"))
	}
	if a.FastAcceptProgress < 0 || a.FastAcceptProgress > 1 {
		errs = append(errs, errors.New("animation.fast_accept_progress must be within [0, 1]"))
	}
	if a.TrailLength < 0 || a.ParticleCount < 0 {
		errs = append(errs, errors.New("animation.trail_length and particle_count must not be negative"))
	}

	if c.Input.RepeatInterval <= 0 {
		errs = append(errs, errors.New("input.repeat_interval must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".labyrinth", "configs", filename)
}
