package composite

import "github.com/pixelgraft/pixelgraft/internal/raster"

// Edges selects whether the pixels at the rounded ends of a scanline span
// belong to the polygon interior.
type Edges = raster.Edges

const (
	// EdgesIncluded treats polygon edge pixels as inside. This is the default.
	EdgesIncluded = raster.EdgesIncluded

	// EdgesExcluded fills only pixels strictly between the rounded
	// intersections.
	EdgesExcluded = raster.EdgesExcluded
)

// DefaultSimilarityThreshold is the distance below which MaskOutside treats
// a pixel as already matching the reference.
const DefaultSimilarityThreshold = 1

// Option configures FillInterior and MaskOutside.
//
// Example:
//
//	n, err := composite.FillInterior(dst, poly, ref, offset,
//		composite.WithEdges(composite.EdgesExcluded),
//		composite.WithWorkers(4))
type Option func(*options)

type options struct {
	edges   Edges
	workers int
}

func defaultOptions() options {
	return options{edges: EdgesIncluded, workers: 1}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithEdges sets the span edge mode.
func WithEdges(e Edges) Option {
	return func(o *options) {
		o.edges = e
	}
}

// WithWorkers processes row bands on n workers. Zero means GOMAXPROCS;
// the default of 1 runs inline.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
