package config

import (
	"fmt"
	"strings"
)

// TierCount is the number of tiers a valid table contains.
const TierCount = 3

// TierIndex returns the index of the named tier. Matching is case-insensitive.
// An empty name selects the easiest tier.
func (c Config) TierIndex(name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	for i, t := range c.Difficulties {
		if strings.EqualFold(t.Name, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("config: unknown difficulty %q (want one of %s)",
		name, strings.Join(c.TierNames(), ", "))
}

// Tier returns the tier at index i, clamped to the table.
func (c Config) Tier(i int) Tier {
	if len(c.Difficulties) == 0 {
		return DefaultConfig().Difficulties[0]
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.Difficulties) {
		i = len(c.Difficulties) - 1
	}
	return c.Difficulties[i]
}

// RaceTier returns the tier index a race uses after `completed` mazes.
// With thresholds [2, 4]: 0-1 completed is tier 0, 2-3 is tier 1, 4+ is tier 2.
func (c Config) RaceTier(completed int) int {
	tier := 0
	for _, threshold := range c.Race.TierThresholds {
		if completed >= threshold {
			tier++
		}
	}
	if max := len(c.Difficulties) - 1; tier > max {
		tier = max
	}
	if tier < 0 {
		tier = 0
	}
	return tier
}
