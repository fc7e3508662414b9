package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGridStartsDead(t *testing.T) {
	g := NewGrid(4)
	if g.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", g.Len())
	}
	if got := len(g.Cells()); got != 16 {
		t.Fatalf("len(Cells()) = %d, want 16", got)
	}
	if g.Population() != 0 {
		t.Fatalf("new grid has %d live cells", g.Population())
	}
	if s := g.Size(); s.W != 4 || s.H != 4 {
		t.Fatalf("Size() = %+v, want 4x4", s)
	}
}

func TestNewGridRejectsZero(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrDimension) {
			t.Fatalf("recover() = %v, want ErrDimension", r)
		}
	}()
	NewGrid(0)
}

func TestSetAndRead(t *testing.T) {
	g := NewGrid(3)
	g.Set(0, 2, true)
	g.Set(2, 1, true)
	g.Set(2, 1, false)

	if !g.Alive(0, 2) {
		t.Fatal("cell (0,2) should be alive")
	}
	if g.Alive(2, 1) {
		t.Fatal("cell (2,1) should be dead after clearing")
	}
	if g.At(0, 2) != Alive || g.At(1, 1) != Dead {
		t.Fatal("At returned unexpected raw values")
	}
	// row-major layout
	if g.Cells()[2] != Alive {
		t.Fatalf("Cells()[2] = %d, want Alive", g.Cells()[2])
	}
}

func TestOutOfRangePanics(t *testing.T) {
	cases := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}}
	for _, c := range cases {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("Alive(%d,%d) recover() = %v, want ErrOutOfRange", c[0], c[1], r)
				}
			}()
			NewGrid(3).Alive(c[0], c[1])
		}()
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 1, true)
	snap := g.Snapshot()
	g.Set(1, 1, false)
	g.Set(0, 0, true)

	if !snap.Alive(1, 1) || snap.Alive(0, 0) {
		t.Fatalf("snapshot changed with source:\n%s", snap)
	}
	if g.Equal(snap) {
		t.Fatal("grid should differ from its earlier snapshot")
	}
}

func TestEachVisitsRowMajor(t *testing.T) {
	g := NewGrid(2)
	g.Set(1, 0, true)
	var visited [][3]int
	g.Each(func(row, col int, alive bool) {
		v := 0
		if alive {
			v = 1
		}
		visited = append(visited, [3]int{row, col, v})
	})
	want := [][3]int{{0, 0, 0}, {0, 1, 0}, {1, 0, 1}, {1, 1, 0}}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("Each order mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsRoundTrip(t *testing.T) {
	rows := []string{
		"#..",
		".#.",
		"..#",
	}
	g, err := GridFromRows(rows)
	if err != nil {
		t.Fatalf("GridFromRows: %v", err)
	}
	if diff := cmp.Diff(rows, g.Rows()); diff != "" {
		t.Fatalf("Rows mismatch (-want +got):\n%s", diff)
	}
	if g.Population() != 3 {
		t.Fatalf("Population() = %d, want 3", g.Population())
	}
	if g.String() != "#..\n.#.\n..#" {
		t.Fatalf("String() = %q", g.String())
	}
}

func TestGridFromRowsErrors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Empty", nil, ErrEmptyGrid},
		{"Ragged", []string{"##", "#"}, ErrNotSquare},
		{"Rectangular", []string{"###", "###"}, ErrNotSquare},
		{"BadChar", []string{"#x", ".."}, ErrBadCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GridFromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Fatalf("GridFromRows(%q) error = %v, want %v", tc.rows, err, tc.err)
			}
		})
	}
}

func TestFill(t *testing.T) {
	g := NewGrid(5)
	g.Fill(true)
	if g.Population() != 25 {
		t.Fatalf("Population() after Fill(true) = %d", g.Population())
	}
	g.Fill(false)
	if g.Population() != 0 {
		t.Fatalf("Population() after Fill(false) = %d", g.Population())
	}
}
