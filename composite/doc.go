// Package composite grafts pixels from a reference photograph onto a target
// photograph.
//
// FillInterior copies the offset-sampled reference into the interior of a
// polygon. MaskOutside marks the pixels outside the polygon that already
// match the reference, replacing them with a near-duplicate whose red
// channel differs by one. Compositor runs both over disjoint pixel sets.
//
// Smaller editing tools live here as well:
// Diff, DrawSquare, DrawPath and CopyPixel.
package composite
