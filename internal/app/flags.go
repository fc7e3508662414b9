package app

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Size     int
	Scale    int
	TPS      int
	Seed     int64
	Tick     time.Duration
	HUDWidth int

	// Set carries key=value overrides handed to the simulation factory.
	Set map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "cave",
		Size:     80,
		Scale:    10,
		TPS:      60,
		Seed:     42,
		Tick:     500 * time.Millisecond,
		HUDWidth: 240,
		Set:      map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Size, "n", c.Size, "cells per grid side")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "time between automaton ticks")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.Func("set", "simulation override as key=value (repeatable)", c.parseSet)
}

func (c *Config) parseSet(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("want key=value, got %q", s)
	}
	if c.Set == nil {
		c.Set = map[string]string{}
	}
	c.Set[key] = strings.TrimSpace(value)
	return nil
}

// Overrides merges the dedicated flags into the -set map for the factory.
// Explicit -set values win.
func (c *Config) Overrides() map[string]string {
	out := map[string]string{
		"n":    strconv.Itoa(c.Size),
		"seed": strconv.FormatInt(c.Seed, 10),
		"tick": c.Tick.String(),
	}
	for k, v := range c.Set {
		out[k] = v
	}
	return out
}

// SetKeys lists the -set keys in sorted order.
func (c *Config) SetKeys() []string {
	keys := make([]string, 0, len(c.Set))
	for k := range c.Set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
