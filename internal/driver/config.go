package driver

import (
	"fmt"
	"strconv"
	"time"

	"weighted-ca/internal/sims/weighted"
	"weighted-ca/internal/transition"
)

// Config holds everything the driver needs to seed, generate and tick a grid.
type Config struct {
	Size            int
	Seed            int64
	FillProbability int

	Weighted weighted.Config

	// Rule is applied on every automaton tick while Automaton is set.
	Rule         transition.Rule
	Automaton    bool
	TickInterval time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:            80,
		Seed:            42,
		FillProbability: 50,
		Weighted:        weighted.DefaultConfig(),
		Rule:            transition.RuleLife,
		TickInterval:    500 * time.Millisecond,
	}
}

// Validate checks the orchestrator-level ranges and the weighted rule preconditions.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: got %d", ErrSize, c.Size)
	}
	if c.FillProbability < 0 || c.FillProbability > 100 {
		return fmt.Errorf("%w: got %d", ErrFillProbability, c.FillProbability)
	}
	return c.Weighted.Validate()
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Weighted rule keys are delegated to weighted.FromMap.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Weighted = weighted.FromMap(cfg)
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.FillProbability = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := transition.ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["automaton"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Automaton = parsed
		}
	}
	if v, ok := cfg["tick"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.TickInterval = parsed
		}
	}
	return c
}
