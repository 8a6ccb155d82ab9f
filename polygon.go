package pixelgraft

import (
	"fmt"
	"image"
)

// Polygon is an ordered list of vertices. The last vertex implicitly
// connects back to the first.
type Polygon []Point

// Valid reports whether the polygon has at least three vertices.
func (p Polygon) Valid() bool {
	return len(p) >= 3
}

// Bounds returns the smallest rectangle containing every vertex. The
// rectangle is inclusive of the maximum vertex, so Max is one past it.
// An empty polygon has empty bounds.
func (p Polygon) Bounds() image.Rectangle {
	if len(p) == 0 {
		return image.Rectangle{}
	}
	r := image.Rect(p[0].X, p[0].Y, p[0].X+1, p[0].Y+1)
	for _, v := range p[1:] {
		r = r.Union(image.Rect(v.X, v.Y, v.X+1, v.Y+1))
	}
	return r
}

// GroundPolygon closes an open user-drawn path against the bottom edge of
// an image of the given height. Two vertices are appended:
// (last.X, height-1) and then (first.X, height-1).
//
// At least two clicks are required.
func GroundPolygon(clicks []Point, height int) (Polygon, error) {
	if len(clicks) < 2 {
		return nil, fmt.Errorf("ground polygon from %d clicks: %w", len(clicks), ErrDegeneratePolygon)
	}
	floor := height - 1
	poly := make(Polygon, 0, len(clicks)+2)
	poly = append(poly, clicks...)
	poly = append(poly,
		Point{X: clicks[len(clicks)-1].X, Y: floor},
		Point{X: clicks[0].X, Y: floor},
	)
	return poly, nil
}

// Path is the ordered list of points a user has placed while outlining a
// region. It supports the draw and erase edits of an interactive editor.
type Path struct {
	points []Point
}

// NewPath creates a path from existing points.
func NewPath(points ...Point) *Path {
	p := &Path{points: make([]Point, 0, len(points))}
	p.points = append(p.points, points...)
	return p
}

// Add appends a point.
func (p *Path) Add(pt Point) {
	p.points = append(p.points, pt)
}

// DefaultEraseRadius is the half-side of the square an erase click clears.
const DefaultEraseRadius = 3

// EraseNear removes every point within the axis-aligned square of half-side
// radius centred at pt, and returns the removed points in path order.
func (p *Path) EraseNear(pt Point, radius int) []Point {
	var removed []Point
	kept := p.points[:0]
	for _, q := range p.points {
		if pt.X-radius <= q.X && q.X <= pt.X+radius && pt.Y-radius <= q.Y && q.Y <= pt.Y+radius {
			removed = append(removed, q)
			continue
		}
		kept = append(kept, q)
	}
	p.points = kept
	return removed
}

// Len returns the number of points.
func (p *Path) Len() int { return len(p.points) }

// Points returns a copy of the points.
func (p *Path) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Close returns the ground polygon for an image of the given height.
func (p *Path) Close(height int) (Polygon, error) {
	return GroundPolygon(p.points, height)
}
