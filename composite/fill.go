package composite

import (
	"sync/atomic"
	"time"

	"github.com/pixelgraft/pixelgraft"
	"github.com/pixelgraft/pixelgraft/internal/parallel"
	"github.com/pixelgraft/pixelgraft/internal/raster"
)

// FillInterior copies source pixels into the interior of poly on target.
//
// Each interior pixel p takes the value of source at p+offset. Pixels whose
// sample falls outside source are left unchanged. It returns the number of
// pixels written. A polygon with fewer than 3 vertices is a no-op that
// returns ErrDegeneratePolygon.
func FillInterior(target *pixelgraft.Buffer, poly pixelgraft.Polygon, source *pixelgraft.Buffer, offset pixelgraft.Point, opts ...Option) (int, error) {
	if !poly.Valid() {
		pixelgraft.Component("composite").Warn("fill skipped", "vertices", len(poly))
		return 0, pixelgraft.ErrDegeneratePolygon
	}
	o := applyOptions(opts)
	start := time.Now()

	scanner := raster.NewScanner(poly, target.Width(), target.Height(), o.edges)
	minY, maxY := scanner.Rows()
	var written atomic.Int64

	parallel.ForBands(maxY-minY+1, o.workers, func(band parallel.Band) {
		var spans []raster.Span
		n := 0
		for y := minY + band.Start; y < minY+band.End; y++ {
			spans = scanner.AppendRow(spans[:0], y)
			for _, sp := range spans {
				n += fillSpan(target, source, sp, offset)
			}
		}
		written.Add(int64(n))
	})

	n := int(written.Load())
	pixelgraft.Component("composite").Debug("fill interior",
		"vertices", len(poly), "offset", offset, "edges", o.edges,
		"written", n, "elapsed", time.Since(start))
	return n, nil
}

func fillSpan(target, source *pixelgraft.Buffer, sp raster.Span, offset pixelgraft.Point) int {
	n := 0
	for x := sp.X0; x <= sp.X1; x++ {
		c, ok := source.Lookup(x+offset.X, sp.Y+offset.Y)
		if !ok {
			continue
		}
		target.Set(x, sp.Y, c)
		n++
	}
	return n
}
