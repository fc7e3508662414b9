// Package analysis measures generated grids: alive fraction and the connected
// regions of dead (open) or live (wall) cells.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"weighted-ca/internal/core"
)

// Regions returns the 4-connected regions of cells whose state equals alive.
// Each region lists row-major cell indices in ascending order; regions are
// sorted by size, largest first, ties broken by their first index.
func Regions(g *core.Grid, alive bool) [][]int {
	n := g.Len()
	cells := g.Cells()
	want := core.Dead
	if alive {
		want = core.Alive
	}

	ug := simple.NewUndirectedGraph()
	for i, v := range cells {
		if v == want {
			ug.AddNode(simple.Node(i))
		}
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			i := row*n + col
			if cells[i] != want {
				continue
			}
			if col+1 < n && cells[i+1] == want {
				ug.SetEdge(ug.NewEdge(simple.Node(i), simple.Node(i+1)))
			}
			if row+1 < n && cells[i+n] == want {
				ug.SetEdge(ug.NewEdge(simple.Node(i), simple.Node(i+n)))
			}
		}
	}

	comps := topo.ConnectedComponents(ug)
	out := make([][]int, 0, len(comps))
	for _, comp := range comps {
		out = append(out, nodeIDs(comp))
	}
	sort.Slice(out, func(a, b int) bool {
		if len(out[a]) != len(out[b]) {
			return len(out[a]) > len(out[b])
		}
		return out[a][0] < out[b][0]
	})
	return out
}

func nodeIDs(nodes []graph.Node) []int {
	ids := make([]int, len(nodes))
	for i, node := range nodes {
		ids[i] = int(node.ID())
	}
	sort.Ints(ids)
	return ids
}

// Summary describes one generated grid.
type Summary struct {
	AliveFraction float64
	Caves         int
	LargestCave   int
}

// Summarize computes the alive fraction and the dead-region ("cave") counts of g.
func Summarize(g *core.Grid) Summary {
	total := g.Len() * g.Len()
	caves := Regions(g, false)
	s := Summary{
		AliveFraction: float64(g.Population()) / float64(total),
		Caves:         len(caves),
	}
	if len(caves) > 0 {
		s.LargestCave = len(caves[0])
	}
	return s
}
