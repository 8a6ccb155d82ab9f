package composite

import (
	"sync/atomic"
	"time"

	"github.com/pixelgraft/pixelgraft"
	"github.com/pixelgraft/pixelgraft/internal/parallel"
)

// MaskOutside marks target pixels outside poly that already match source.
//
// For every outside pixel p whose sample source(p+offset) is in bounds and
// within distance < threshold, target(p) becomes the sample with its red
// channel nudged by one: 255 becomes 254, anything else is incremented.
// Other pixels are untouched. It returns the number of pixels rewritten.
// A polygon with fewer than 3 vertices is a no-op that returns
// ErrDegeneratePolygon.
func MaskOutside(target, source *pixelgraft.Buffer, offset pixelgraft.Point, poly pixelgraft.Polygon, threshold int, opts ...Option) (int, error) {
	o := applyOptions(opts)
	region, err := NewRegion(target.Width(), target.Height(), poly, o.edges)
	if err != nil {
		pixelgraft.Component("composite").Warn("mask skipped", "vertices", len(poly))
		return 0, err
	}
	start := time.Now()

	var marked atomic.Int64
	parallel.ForBands(target.Height(), o.workers, func(band parallel.Band) {
		n := 0
		for y := band.Start; y < band.End; y++ {
			for x := range target.Width() {
				if region.Inside(x, y) {
					continue
				}
				if markPixel(target, source, x, y, offset, threshold) {
					n++
				}
			}
		}
		marked.Add(int64(n))
	})

	n := int(marked.Load())
	pixelgraft.Component("composite").Debug("mask outside",
		"offset", offset, "threshold", threshold, "inside", region.Count(),
		"marked", n, "elapsed", time.Since(start))
	return n, nil
}

func markPixel(target, source *pixelgraft.Buffer, x, y int, offset pixelgraft.Point, threshold int) bool {
	sample, ok := source.Lookup(x+offset.X, y+offset.Y)
	if !ok {
		return false
	}
	if pixelgraft.Distance(target.At(x, y), sample) >= threshold {
		return false
	}
	target.Set(x, y, Nudge(sample))
	return true
}

// Nudge returns c with its red channel moved by one unit, down from 255 and
// up otherwise.
func Nudge(c pixelgraft.RGB) pixelgraft.RGB {
	if c.R == 255 {
		c.R--
	} else {
		c.R++
	}
	return c
}
