// Package seed fills a grid with random noise inside a solid live border.
package seed

import "weighted-ca/internal/core"

// Fill overwrites every cell of g. Border cells are forced alive; each
// interior cell is alive when a draw from [0, 100) is below fillProbability.
// Draws are taken in row-major order, one per interior cell.
func Fill(g *core.Grid, fillProbability int, src core.Source) {
	if src == nil {
		panic(core.ErrNilSource)
	}
	n := g.Len()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if Border(n, row, col) {
				g.Set(row, col, true)
				continue
			}
			g.Set(row, col, src.IntN(100) < fillProbability)
		}
	}
}

// Border reports whether (row, col) lies on the outer ring of an n×n grid.
func Border(n, row, col int) bool {
	return row == 0 || col == 0 || row == n-1 || col == n-1
}
