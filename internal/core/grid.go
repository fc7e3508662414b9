package core

import (
	"fmt"
	"strings"
)

const (
	// Dead is the stored value of a dead cell.
	Dead uint8 = 0
	// Alive is the stored value of a live cell.
	Alive uint8 = 1
)

// Grid stores an NxN matrix of binary cells in row-major order.
type Grid struct {
	n    int
	data []uint8
}

// NewGrid allocates an all-dead grid of dimension n. It panics when n < 1.
func NewGrid(n int) *Grid {
	if n < 1 {
		panic(fmt.Errorf("%w: %d", ErrDimension, n))
	}
	return &Grid{n: n, data: make([]uint8, n*n)}
}

// GridFromRows parses rows of '#' (alive) and '.' (dead) into a grid.
func GridFromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	g := NewGrid(n)
	for row, line := range rows {
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, row, len(line), n)
		}
		for col, ch := range line {
			switch ch {
			case '#':
				g.data[row*n+col] = Alive
			case '.':
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, row, col)
			}
		}
	}
	return g, nil
}

// Len returns the grid dimension N.
func (g *Grid) Len() int { return g.n }

// Size reports the grid as a W×H pair for renderers.
func (g *Grid) Size() Size { return Size{W: g.n, H: g.n} }

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, row, col, g.n, g.n))
	}
	return row*g.n + col
}

// At returns the stored state (Dead or Alive) of a cell.
func (g *Grid) At(row, col int) uint8 { return g.data[g.index(row, col)] }

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) bool { return g.data[g.index(row, col)] == Alive }

// Set writes the state of a single cell.
func (g *Grid) Set(row, col int, alive bool) {
	idx := g.index(row, col)
	if alive {
		g.data[idx] = Alive
		return
	}
	g.data[idx] = Dead
}

// Snapshot returns an independent deep copy of the grid.
func (g *Grid) Snapshot() *Grid {
	cp := &Grid{n: g.n, data: make([]uint8, len(g.data))}
	copy(cp.data, g.data)
	return cp
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(row, col int, alive bool)) {
	for row := 0; row < g.n; row++ {
		base := row * g.n
		for col := 0; col < g.n; col++ {
			fn(row, col, g.data[base+col] == Alive)
		}
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	count := 0
	for _, v := range g.data {
		count += int(v)
	}
	return count
}

// Equal reports whether both grids have the same dimension and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || other.n != g.n {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Fill sets every cell to the same state.
func (g *Grid) Fill(alive bool) {
	v := Dead
	if alive {
		v = Alive
	}
	for i := range g.data {
		g.data[i] = v
	}
}

// Rows renders the grid as one string per row using '#' and '.'.
func (g *Grid) Rows() []string {
	rows := make([]string, g.n)
	var b strings.Builder
	for row := 0; row < g.n; row++ {
		b.Reset()
		for _, v := range g.data[row*g.n : (row+1)*g.n] {
			if v == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[row] = b.String()
	}
	return rows
}

// String joins Rows with newlines.
func (g *Grid) String() string { return strings.Join(g.Rows(), "\n") }
