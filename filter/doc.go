// Package filter provides the separable Gaussian blur used to preprocess
// photographs before block matching.
//
// The blur runs as two 1-D passes: a horizontal pass into a float64
// intermediate buffer and a vertical pass back to 8-bit channels. Samples
// outside the image are clamped to the nearest edge pixel; there is no
// wraparound and no zero padding.
//
// Row bands of each pass run in parallel. The result does not depend on
// the number of workers.
package filter
