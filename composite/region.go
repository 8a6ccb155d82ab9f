package composite

import (
	"image"

	"github.com/pixelgraft/pixelgraft"
	"github.com/pixelgraft/pixelgraft/internal/raster"
)

// Region is a binary inside/outside mask over a width×height grid.
type Region struct {
	width  int
	height int
	inside []bool
}

// NewRegion rasterizes poly into an inside mask: the spans FillInterior
// writes plus every pixel on the polygon boundary, horizontal edges and the
// closing edge included. Boundary pixels are inside in both edge modes.
// Polygons with fewer than 3 vertices are rejected.
func NewRegion(width, height int, poly pixelgraft.Polygon, edges Edges) (*Region, error) {
	if !poly.Valid() {
		return nil, pixelgraft.ErrDegeneratePolygon
	}
	r := newRegion(width, height)
	for _, sp := range raster.NewScanner(poly, width, height, edges).Spans() {
		row := r.inside[sp.Y*r.width:]
		for x := sp.X0; x <= sp.X1; x++ {
			row[x] = true
		}
	}
	for i, p := range poly {
		walkLine(p, poly[(i+1)%len(poly)], r.mark)
	}
	return r, nil
}

// mark sets (x, y) inside, ignoring coordinates off the grid.
func (r *Region) mark(x, y int) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.inside[y*r.width+x] = true
}

func newRegion(width, height int) *Region {
	width, height = max(0, width), max(0, height)
	return &Region{width: width, height: height, inside: make([]bool, width*height)}
}

// Bounds returns the region extent.
func (r *Region) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Width returns the region width.
func (r *Region) Width() int { return r.width }

// Height returns the region height.
func (r *Region) Height() int { return r.height }

// Inside reports whether (x, y) is inside the polygon.
// Coordinates outside the grid are never inside.
func (r *Region) Inside(x, y int) bool {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return false
	}
	return r.inside[y*r.width+x]
}

// Count returns the number of inside pixels.
func (r *Region) Count() int {
	n := 0
	for _, in := range r.inside {
		if in {
			n++
		}
	}
	return n
}

// Invert swaps inside and outside.
func (r *Region) Invert() {
	for i := range r.inside {
		r.inside[i] = !r.inside[i]
	}
}

// Clone creates a copy of the region.
func (r *Region) Clone() *Region {
	c := newRegion(r.width, r.height)
	copy(c.inside, r.inside)
	return c
}
