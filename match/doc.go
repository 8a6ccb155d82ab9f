// Package match locates where a square block of one image re-occurs in a
// second image.
//
// A block anchored in the first buffer is compared against every candidate
// position inside a rectangular offset window of the second buffer. Pixels
// match when their Manhattan color distance is below a threshold; a
// candidate is abandoned as soon as its mismatch count exceeds a cap. The
// candidate with the fewest mismatches wins, and ties go to the first
// candidate in row-major (dy, then dx) order.
package match
