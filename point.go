package pixelgraft

import (
	"fmt"
	"image"
)

// Point is an integer pixel coordinate or displacement.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// In reports whether p lies inside r.
func (p Point) In(r image.Rectangle) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// OffsetBetween returns the alignment offset Δ with to = from + Δ.
// from is a coordinate in the primary image and to the corresponding
// coordinate in the secondary one.
func OffsetBetween(from, to Point) Point {
	return to.Sub(from)
}
