//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	lines     []Segment
	linesSize int
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines strokes the cell boundaries over a grid drawn at scale.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, clr color.Color, scale int) {
	size := gp.w * scale
	if gp.lines == nil || gp.linesSize != size {
		gp.lines = GridLines(float32(size), gp.w)
		gp.linesSize = size
	}
	for _, s := range gp.lines {
		vector.StrokeLine(dst, s.X0, s.Y0, s.X1, s.Y1, 1, clr, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
