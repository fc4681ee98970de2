package config

import (
	"fmt"

	"github.com/grovetools/tzclock/errors"
)

var validAlignments = map[string]bool{
	"left":   true,
	"right":  true,
	"center": true,
}

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.Terminal.TickRateMillis <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("terminal.tick_rate_ms must be positive, got %d", c.Terminal.TickRateMillis)).
			WithDetail("field", "terminal.tick_rate_ms")
	}
	if !validAlignments[c.Frontend.Alignment] {
		return errors.ConfigInvalid(fmt.Sprintf("frontend.alignment must be left, right or center, got %q", c.Frontend.Alignment)).
			WithDetail("field", "frontend.alignment")
	}
	if c.Frontend.Padding < 0 {
		return errors.ConfigInvalid("frontend.padding cannot be negative").
			WithDetail("field", "frontend.padding")
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return errors.ConfigInvalid(fmt.Sprintf("keys.%s must list at least one key", action)).
				WithDetail("field", "keys."+action)
		}
	}
	return nil
}
