// Package weighted implements the layered weighted-neighbourhood rule used to
// grow cave-like maps out of random noise.
//
// For every cell the rule sums the states of all cells within Chebyshev
// distance LayerCount, each scaled by the weight of its layer. A cell whose
// sum is below MinWeightToDie dies, one above MinWeightToSpawn comes alive and
// anything in between keeps its state.
package weighted

import (
	"weighted-ca/internal/core"
)

// Run applies cfg.Iterations passes to g in place. It panics when cfg fails
// Validate.
func Run(g *core.Grid, cfg Config) {
	mustValidate(cfg)
	for it := 0; it < cfg.Iterations; it++ {
		pass(g, cfg)
	}
}

// Pass applies exactly one pass regardless of cfg.Iterations.
func Pass(g *core.Grid, cfg Config) {
	mustValidate(cfg)
	pass(g, cfg)
}

func mustValidate(cfg Config) {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
}

func pass(g *core.Grid, cfg Config) {
	read := readSource(g, cfg.UsePrevStates)
	n := g.Len()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			weight := CellWeight(read, row, col, cfg)
			if weight < cfg.MinWeightToDie {
				g.Set(row, col, false)
			} else if weight > cfg.MinWeightToSpawn {
				g.Set(row, col, true)
			}
		}
	}
}

// readSource picks the grid a pass reads from. With usePrev the pass reads a
// snapshot taken before any cell changes. Otherwise it reads g itself, so a
// cell sees the new values of every cell before it in row-major order.
func readSource(g *core.Grid, usePrev bool) *core.Grid {
	if usePrev {
		return g.Snapshot()
	}
	return g
}

// CellWeight accumulates the weight of (row, col) reading states from read.
func CellWeight(read *core.Grid, row, col int, cfg Config) float64 {
	n := read.Len()
	cells := read.Cells()
	layers := cfg.LayerCount
	weight := 0.0
	for k := row - layers; k <= row+layers; k++ {
		for l := col - layers; l <= col+layers; l++ {
			if k < 0 || k >= n || l < 0 || l >= n {
				if cfg.PreferWalling {
					weight++
				}
				continue
			}
			state := float64(cells[k*n+l])
			if k == row && l == col {
				if cfg.UseCurrentCell {
					weight += state * cfg.CurrentCellWeight
				}
				continue
			}
			weight += state * cfg.LayerWeights[chebyshev(row, col, k, l)-1]
		}
	}
	return weight
}

func chebyshev(r1, c1, r2, c2 int) int {
	dr := abs(r1 - r2)
	dc := abs(c1 - c2)
	if dr > dc {
		return dr
	}
	return dc
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
