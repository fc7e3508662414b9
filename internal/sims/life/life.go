// Package life implements Conway's Game of Life on a bounded grid. Cells
// outside the grid count as dead; there is no wrapping.
package life

import "weighted-ca/internal/core"

var mooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Step advances g by one generation. Every cell reads its neighbours from a
// snapshot of the previous generation.
func Step(g *core.Grid) {
	prev := g.Snapshot()
	n := g.Len()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			switch Neighbors(prev, row, col) {
			case 2:
				// survivors stay alive, empty cells stay empty
			case 3:
				g.Set(row, col, true)
			default:
				g.Set(row, col, false)
			}
		}
	}
}

// Neighbors counts live cells among the eight cells surrounding (row, col).
func Neighbors(g *core.Grid, row, col int) int {
	count := 0
	for _, off := range mooreOffsets {
		r, c := row+off[0], col+off[1]
		if g.InBounds(r, c) {
			count += int(g.At(r, c))
		}
	}
	return count
}
