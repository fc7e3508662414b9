package render

// Segment is a straight line in screen coordinates.
type Segment struct {
	X0, Y0 float32
	X1, Y1 float32
}

// GridLines returns the interior lines that split a square view of size
// pixels into n×n cells: n-1 vertical lines followed by n-1 horizontal ones.
func GridLines(size float32, n int) []Segment {
	if n <= 1 || size <= 0 {
		return nil
	}
	spacing := size / float32(n)
	lines := make([]Segment, 0, 2*(n-1))
	for i := 1; i < n; i++ {
		x := float32(i) * spacing
		lines = append(lines, Segment{X0: x, Y0: 0, X1: x, Y1: size})
	}
	for i := 1; i < n; i++ {
		y := float32(i) * spacing
		lines = append(lines, Segment{X0: 0, Y0: y, X1: size, Y1: y})
	}
	return lines
}
