package weighted

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds the parameters of the weighted-neighbourhood rule.
type Config struct {
	// Iterations is the number of passes Run applies.
	Iterations int
	// LayerCount is the Chebyshev radius of the neighbourhood window.
	LayerCount int
	// LayerWeights[d-1] weights a live neighbour at Chebyshev distance d.
	LayerWeights []float64

	UsePrevStates     bool
	UseCurrentCell    bool
	CurrentCellWeight float64

	// A cell dies when its weight is strictly below MinWeightToDie and is
	// otherwise born when its weight is strictly above MinWeightToSpawn.
	MinWeightToDie   float64
	MinWeightToSpawn float64

	// PreferWalling adds 1 for every window position outside the grid.
	PreferWalling bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Iterations:       0,
		LayerCount:       1,
		LayerWeights:     []float64{1},
		MinWeightToDie:   4,
		MinWeightToSpawn: 4,
	}
}

// Validate reports whether the configuration satisfies the engine preconditions.
func (c Config) Validate() error {
	if c.LayerCount < 1 {
		return fmt.Errorf("%w: got %d", ErrLayerCount, c.LayerCount)
	}
	if len(c.LayerWeights) != c.LayerCount {
		return fmt.Errorf("%w: %d weights for %d layers", ErrLayerWeights, len(c.LayerWeights), c.LayerCount)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: got %d", ErrIterations, c.Iterations)
	}
	return nil
}

// SetLayerCount changes the radius and resets every layer weight to 1.
func (c *Config) SetLayerCount(n int) {
	if n < 1 {
		n = 1
	}
	c.LayerCount = n
	c.LayerWeights = make([]float64, n)
	for i := range c.LayerWeights {
		c.LayerWeights[i] = 1
	}
}

// Clone returns a copy that does not share the weight table.
func (c Config) Clone() Config {
	c.LayerWeights = append([]float64(nil), c.LayerWeights...)
	return c
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Iterations = parsed
		}
	}
	if v, ok := cfg["layers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SetLayerCount(parsed)
		}
	}
	if v, ok := cfg["weights"]; ok {
		if weights, err := parseWeights(v); err == nil && len(weights) > 0 {
			c.LayerCount = len(weights)
			c.LayerWeights = weights
		}
	}
	if v, ok := cfg["prev"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.UsePrevStates = parsed
		}
	}
	if v, ok := cfg["current"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.UseCurrentCell = parsed
		}
	}
	if v, ok := cfg["current_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.CurrentCellWeight = parsed
		}
	}
	if v, ok := cfg["die"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.MinWeightToDie = parsed
		}
	}
	if v, ok := cfg["spawn"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.MinWeightToSpawn = parsed
		}
	}
	if v, ok := cfg["walling"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.PreferWalling = parsed
		}
	}
	return c
}

func parseWeights(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		w, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
