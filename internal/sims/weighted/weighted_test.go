package weighted

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighted-ca/internal/core"
	"weighted-ca/internal/seed"
)

func mustGrid(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g, err := core.GridFromRows(rows)
	require.NoError(t, err)
	return g
}

func caveConfig() Config {
	cfg := DefaultConfig()
	cfg.Iterations = 4
	cfg.UsePrevStates = true
	cfg.PreferWalling = true
	cfg.MinWeightToDie = 4
	cfg.MinWeightToSpawn = 4
	return cfg
}

func TestRunZeroIterationsIsNoop(t *testing.T) {
	g := core.NewGrid(12)
	seed.Fill(g, 45, core.NewRNG(3))
	before := g.Snapshot()

	cfg := caveConfig()
	cfg.Iterations = 0
	Run(g, cfg)

	assert.True(t, before.Equal(g), "zero iterations changed the grid:\n%s", g)
}

func TestRunSnapshotModeDeterministic(t *testing.T) {
	start := core.NewGrid(24)
	seed.Fill(start, 48, core.NewRNG(11))

	a := start.Snapshot()
	b := start.Snapshot()
	Run(a, caveConfig())
	Run(b, caveConfig())

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(start), "four cave passes should change a noisy grid")
}

func TestDieThresholdIsStrict(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UsePrevStates = true
	cfg.MinWeightToDie = 8
	cfg.MinWeightToSpawn = 100

	g := mustGrid(t, "###", "###", "###")
	Pass(g, cfg)
	assert.True(t, g.Alive(1, 1), "weight equal to the die threshold must not kill")

	cfg.MinWeightToDie = 8.001
	g = mustGrid(t, "###", "###", "###")
	Pass(g, cfg)
	assert.False(t, g.Alive(1, 1), "weight below the die threshold must kill")
}

func TestSpawnThresholdIsStrict(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UsePrevStates = true
	cfg.MinWeightToDie = 0
	cfg.MinWeightToSpawn = 8

	g := mustGrid(t, "###", "#.#", "###")
	Pass(g, cfg)
	assert.False(t, g.Alive(1, 1), "weight equal to the spawn threshold must not spawn")

	cfg.MinWeightToSpawn = 7.999
	g = mustGrid(t, "###", "#.#", "###")
	Pass(g, cfg)
	assert.True(t, g.Alive(1, 1), "weight above the spawn threshold must spawn")
}

func TestEqualThresholdsLeaveCellUnchanged(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UsePrevStates = true
	cfg.MinWeightToDie = 3
	cfg.MinWeightToSpawn = 3

	// centre has exactly three live neighbours in both layouts
	alive := mustGrid(t, "#.#", ".##", "...")
	Pass(alive, cfg)
	assert.True(t, alive.Alive(1, 1))

	dead := mustGrid(t, "#.#", "..#", "...")
	Pass(dead, cfg)
	assert.False(t, dead.Alive(1, 1))
}

func TestWallingCornerWeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LayerWeights = []float64{0}
	cfg.PreferWalling = true

	g := core.NewGrid(3)
	assert.Equal(t, 5.0, CellWeight(g, 0, 0, cfg))
	assert.Equal(t, 5.0, CellWeight(g, 2, 2, cfg))
	assert.Equal(t, 3.0, CellWeight(g, 0, 1, cfg))
	assert.Equal(t, 0.0, CellWeight(g, 1, 1, cfg))

	cfg.PreferWalling = false
	assert.Equal(t, 0.0, CellWeight(g, 0, 0, cfg))
}

func TestWallingWideWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetLayerCount(2)
	cfg.LayerWeights = []float64{0, 0}
	cfg.PreferWalling = true

	// 5x5 window around a corner of a 3x3 grid: 9 positions inside, 16 outside.
	assert.Equal(t, 16.0, CellWeight(core.NewGrid(3), 0, 0, cfg))
}

func TestLayerWeightsIndexedByChebyshevDistance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LayerCount = 2
	cfg.LayerWeights = []float64{0.5, 0.25}

	g := core.NewGrid(5)
	g.Set(0, 0, true)

	assert.Equal(t, 0.5, CellWeight(g, 1, 1, cfg))
	assert.Equal(t, 0.25, CellWeight(g, 2, 2, cfg))
	assert.Equal(t, 0.25, CellWeight(g, 1, 2, cfg))
	assert.Equal(t, 0.0, CellWeight(g, 3, 0, cfg), "distance 3 is outside a two-layer window")
}

func TestCurrentCellWeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CurrentCellWeight = 3

	g := core.NewGrid(3)
	g.Set(1, 1, true)

	assert.Equal(t, 0.0, CellWeight(g, 1, 1, cfg), "own state ignored without UseCurrentCell")
	cfg.UseCurrentCell = true
	assert.Equal(t, 3.0, CellWeight(g, 1, 1, cfg))
	assert.Equal(t, 1.0, CellWeight(g, 0, 0, cfg), "neighbours still use the layer weight")
}

func TestLiveReadsCascadeInRowMajorOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinWeightToDie = -1
	cfg.MinWeightToSpawn = 0.5

	snap := mustGrid(t, "#..", "...", "...")
	cfg.UsePrevStates = true
	Pass(snap, cfg)
	assert.Equal(t, []string{"##.", "##.", "..."}, snap.Rows())

	live := mustGrid(t, "#..", "...", "...")
	cfg.UsePrevStates = false
	Pass(live, cfg)
	assert.Equal(t, 9, live.Population(), "live reads let births propagate within one pass")
}

func TestRunRepeatsPasses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UsePrevStates = true
	cfg.MinWeightToDie = -1
	cfg.MinWeightToSpawn = 0.5

	g := core.NewGrid(7)
	g.Set(0, 0, true)
	cfg.Iterations = 3
	Run(g, cfg)

	// each pass grows the live square by one cell in both directions
	assert.True(t, g.Alive(3, 3))
	assert.False(t, g.Alive(4, 0))
	assert.Equal(t, 16, g.Population())
}

func TestLayerCountLargerThanGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetLayerCount(5)
	cfg.Iterations = 2
	cfg.PreferWalling = true
	cfg.MinWeightToDie = 0
	cfg.MinWeightToSpawn = 1000

	g := mustGrid(t, "#.", ".#")
	require.NotPanics(t, func() { Run(g, cfg) })
	assert.Equal(t, []string{"#.", ".#"}, g.Rows())
}

func TestRunPanicsOnInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		err  error
	}{
		{"ShortWeights", func(c *Config) { c.LayerCount = 2 }, ErrLayerWeights},
		{"ZeroLayers", func(c *Config) { c.LayerCount = 0; c.LayerWeights = nil }, ErrLayerCount},
		{"NegativeIterations", func(c *Config) { c.Iterations = -1 }, ErrIterations},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mod(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.err)

			defer func() {
				r := recover()
				err, ok := r.(error)
				require.True(t, ok, "expected an error panic, got %v", r)
				assert.True(t, errors.Is(err, tc.err), "panic %v, want %v", err, tc.err)
			}()
			Run(core.NewGrid(3), cfg)
		})
	}
}
