package raster

import (
	"math"
	"slices"

	"github.com/pixelgraft/pixelgraft"
)

// Edges selects whether the pixels at the rounded ends of a span belong to it.
type Edges int

const (
	// EdgesIncluded covers round(xStart) through round(xEnd).
	EdgesIncluded Edges = iota

	// EdgesExcluded covers only the pixels strictly between the rounded
	// intersections.
	EdgesExcluded
)

// String returns the mode name.
func (e Edges) String() string {
	switch e {
	case EdgesIncluded:
		return "included"
	case EdgesExcluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// Span is a horizontal run of pixels on row Y from X0 to X1 inclusive.
type Span struct {
	Y, X0, X1 int
}

// Len returns the number of pixels in the span.
func (s Span) Len() int {
	if s.X1 < s.X0 {
		return 0
	}
	return s.X1 - s.X0 + 1
}

// Intersections appends to dst the x coordinates where row y crosses the
// edges of poly, sorted ascending.
//
// An edge contributes when min(y1,y2) <= y < max(y1,y2). Horizontal edges
// never contribute, and a vertex shared by two edges is counted once for a
// monotone pass and twice (or not at all) at a local extremum.
func Intersections(dst []float64, poly pixelgraft.Polygon, y int) []float64 {
	start := len(dst)
	n := len(poly)
	for i := range n {
		p1, p2 := poly[i], poly[(i+1)%n]
		if p1.Y == p2.Y {
			continue
		}
		if (p1.Y <= y && y < p2.Y) || (p2.Y <= y && y < p1.Y) {
			x := float64(p1.X) + float64(y-p1.Y)*float64(p2.X-p1.X)/float64(p2.Y-p1.Y)
			dst = append(dst, x)
		}
	}
	slices.Sort(dst[start:])
	return dst
}

// Scanner turns a polygon into clamped pixel spans for a width×height grid.
// A Scanner is immutable and safe for concurrent use.
type Scanner struct {
	poly   pixelgraft.Polygon
	width  int
	height int
	edges  Edges
	minY   int
	maxY   int
}

// NewScanner prepares poly for scanning. The vertical extent is clamped to
// [0, height-1].
func NewScanner(poly pixelgraft.Polygon, width, height int, edges Edges) *Scanner {
	s := &Scanner{poly: poly, width: width, height: height, edges: edges, minY: 0, maxY: -1}
	if len(poly) == 0 {
		return s
	}
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	s.minY = max(0, minY)
	s.maxY = min(height-1, maxY)
	return s
}

// Rows returns the inclusive range of rows that may contain spans.
// The range is empty when minY > maxY.
func (s *Scanner) Rows() (minY, maxY int) {
	return s.minY, s.maxY
}

// AppendRow appends the spans of row y to dst. Intersections are paired in
// order (0,1), (2,3)...; an unpaired trailing intersection is dropped.
func (s *Scanner) AppendRow(dst []Span, y int) []Span {
	if y < s.minY || y > s.maxY {
		return dst
	}
	var scratch [16]float64
	xs := Intersections(scratch[:0], s.poly, y)

	for i := 0; i+1 < len(xs); i += 2 {
		x0 := max(0, int(math.RoundToEven(xs[i])))
		x1 := min(s.width-1, int(math.RoundToEven(xs[i+1])))
		if s.edges == EdgesExcluded {
			x0++
			x1--
		}
		if x0 > x1 {
			continue
		}
		dst = append(dst, Span{Y: y, X0: x0, X1: x1})
	}
	return dst
}

// Spans returns every span of the polygon, top to bottom.
func (s *Scanner) Spans() []Span {
	var out []Span
	for y := s.minY; y <= s.maxY; y++ {
		out = s.AppendRow(out, y)
	}
	return out
}
