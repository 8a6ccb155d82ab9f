// Package pixelgraft provides the pixel-domain core for aligning and
// compositing two photographs of the same scene.
//
// # Overview
//
// The package holds the shared data model: an in-memory RGB [Buffer], integer
// [Point] coordinates, closed [Polygon] regions and the user-drawn [Path] they
// are built from. Algorithms live in sub-packages:
//
//   - filter: separable Gaussian blur
//   - match: bounded block search with an early-exit Manhattan metric
//   - composite: polygon fill from a second image, outside near-match marking,
//     difference maps and preview drawing
//   - picker: obtaining a point in image space from a user or a script
//
// # Quick Start
//
//	a, _ := pixelgraft.Load("frame_1.png")
//	b, _ := pixelgraft.Load("frame_2.png")
//
//	res := match.Match(a, b, pixelgraft.Pt(504, 431), match.DefaultConfig())
//	if !res.Found {
//	    return res.Err()
//	}
//
//	poly, _ := pixelgraft.GroundPolygon(clicks, a.Height())
//	c := composite.Compositor{Offset: res.Offset, Threshold: 1}
//	if _, err := c.Apply(a, b, poly); err != nil {
//	    return err
//	}
//	_ = a.SavePNG("out.png")
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X is the column and increases right
//   - Y is the row and increases down
//
// An alignment offset Δ maps a coordinate in the primary buffer to the
// secondary one: texCoord = mainCoord + Δ.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive debug timings
// and warnings from all sub-packages.
package pixelgraft
