// Package hat implements the "hat" rule: a cell is alive in the next
// generation when exactly one of its left and right neighbours is alive.
// Vertical neighbours never contribute.
package hat

import "weighted-ca/internal/core"

// Step advances g by one generation, reading from a snapshot of the previous one.
func Step(g *core.Grid) {
	prev := g.Snapshot()
	n := g.Len()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			g.Set(row, col, Weight(prev, row, col) == 1)
		}
	}
}

// Weight sums the left and right neighbours of (row, col). Cells past either
// edge count as dead.
func Weight(g *core.Grid, row, col int) int {
	w := 0
	if col > 0 {
		w += int(g.At(row, col-1))
	}
	if col < g.Len()-1 {
		w += int(g.At(row, col+1))
	}
	return w
}
