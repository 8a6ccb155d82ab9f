package composite

import (
	"fmt"

	"github.com/pixelgraft/pixelgraft"
)

// DrawSquare outlines a square of side size centred on center.
//
// The outer edge spans center-size/2 to center+size/2 inclusive and the
// outline grows inward by width pixels. Pixels off the buffer are clipped.
func DrawSquare(buf *pixelgraft.Buffer, center pixelgraft.Point, size, width int, c pixelgraft.RGB) {
	half := size / 2
	x0, y0 := center.X-half, center.Y-half
	x1, y1 := center.X+half, center.Y+half

	for i := 0; i < width && x0+i <= x1-i && y0+i <= y1-i; i++ {
		drawLine(buf, pixelgraft.Pt(x0+i, y0+i), pixelgraft.Pt(x1-i, y0+i), c)
		drawLine(buf, pixelgraft.Pt(x0+i, y1-i), pixelgraft.Pt(x1-i, y1-i), c)
		drawLine(buf, pixelgraft.Pt(x0+i, y0+i), pixelgraft.Pt(x0+i, y1-i), c)
		drawLine(buf, pixelgraft.Pt(x1-i, y0+i), pixelgraft.Pt(x1-i, y1-i), c)
	}
}

// DrawPath previews the polygon a path will close into: a leg from the
// first click down to the bottom row, the polyline through every click, and
// a leg from the last click down to the bottom row.
func DrawPath(buf *pixelgraft.Buffer, path *pixelgraft.Path, c pixelgraft.RGB) {
	pts := path.Points()
	if len(pts) == 0 {
		return
	}
	floor := buf.Height() - 1

	first := pts[0]
	drawLine(buf, first, pixelgraft.Pt(first.X, floor), c)
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		drawLine(buf, pts[i-1], pts[i], c)
	}
	last := pts[len(pts)-1]
	drawLine(buf, last, pixelgraft.Pt(last.X, floor), c)
}

// drawLine plots a 1-pixel Bresenham line from p to q inclusive.
func drawLine(buf *pixelgraft.Buffer, p, q pixelgraft.Point, c pixelgraft.RGB) {
	walkLine(p, q, func(x, y int) { buf.Set(x, y, c) })
}

// walkLine calls plot for every Bresenham pixel from p to q inclusive.
// Coordinates are not clipped.
func walkLine(p, q pixelgraft.Point, plot func(x, y int)) {
	dx := abs(q.X - p.X)
	dy := -abs(q.Y - p.Y)
	sx, sy := sign(q.X-p.X), sign(q.Y-p.Y)
	e := dx + dy

	x, y := p.X, p.Y
	for {
		plot(x, y)
		if x == q.X && y == q.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// CopyPixel copies the source pixel at p onto target at the same position.
func CopyPixel(target, source *pixelgraft.Buffer, p pixelgraft.Point) error {
	c, ok := source.Lookup(p.X, p.Y)
	if !ok || !target.In(p.X, p.Y) {
		return fmt.Errorf("%w: %v", pixelgraft.ErrOutOfBounds, p)
	}
	target.Set(p.X, p.Y, c)
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
