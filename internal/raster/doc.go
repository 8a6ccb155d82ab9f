// Package raster converts integer polygons into horizontal pixel spans using
// even-odd scanline intersection.
//
// Each row y is intersected with every non-horizontal edge under the
// half-open rule [min y, max y). The sorted intersections are paired and
// rounded half-to-even into inclusive spans clamped to the grid.
package raster
