package composite

import (
	"fmt"
	"time"

	"github.com/pixelgraft/pixelgraft"
)

// Compositor grafts a reference photograph onto a target through a polygon.
//
// Example:
//
//	c := composite.Compositor{Offset: res.Offset, Threshold: composite.DefaultSimilarityThreshold}
//	report, err := c.Apply(main, ref, poly)
type Compositor struct {
	// Offset maps target coordinates to source coordinates.
	Offset pixelgraft.Point

	// Threshold is the MaskOutside similarity threshold.
	Threshold int

	// Edges is the span edge mode shared by the fill and the mask.
	Edges Edges

	// Workers bounds the row-band parallelism (0 = GOMAXPROCS, 1 = inline).
	Workers int
}

// Report summarises one Apply call.
type Report struct {
	Filled  int
	Marked  int
	Elapsed time.Duration
}

// String formats the report for logs.
func (r Report) String() string {
	return fmt.Sprintf("filled %d marked %d in %v", r.Filled, r.Marked, r.Elapsed)
}

// Apply fills the polygon interior of target from source, then marks the
// matching pixels outside it. The two stages touch disjoint pixels.
func (c Compositor) Apply(target, source *pixelgraft.Buffer, poly pixelgraft.Polygon) (Report, error) {
	start := time.Now()
	opts := []Option{WithEdges(c.Edges), WithWorkers(c.Workers)}

	filled, err := FillInterior(target, poly, source, c.Offset, opts...)
	if err != nil {
		return Report{}, fmt.Errorf("composite: fill: %w", err)
	}
	marked, err := MaskOutside(target, source, c.Offset, poly, c.Threshold, opts...)
	if err != nil {
		return Report{}, fmt.Errorf("composite: mask: %w", err)
	}

	r := Report{Filled: filled, Marked: marked, Elapsed: time.Since(start)}
	pixelgraft.Component("composite").Debug("composite applied", "filled", r.Filled, "marked", r.Marked, "elapsed", r.Elapsed)
	return r, nil
}
