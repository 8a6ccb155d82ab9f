package match

import "github.com/pixelgraft/pixelgraft"

// InfeasibleScore is the mismatch score reported for a candidate that was
// out of bounds or abandoned by the mismatch cap.
const InfeasibleScore = 10_000_000

// Score is the outcome of comparing one block pair.
type Score struct {
	// Visited is the number of pixel pairs compared before returning.
	Visited int

	// Matched is the number of compared pairs within the threshold.
	Matched int

	// Feasible is false when the window left a buffer or the mismatch cap
	// was exceeded.
	Feasible bool
}

// Mismatch returns Visited-Matched for feasible scores (lower is better),
// or InfeasibleScore.
func (s Score) Mismatch() int {
	if !s.Feasible {
		return InfeasibleScore
	}
	return s.Visited - s.Matched
}

// windowFits reports whether the inclusive window starting at topLeft lies
// inside b. A window touching x = width is rejected: topLeft.X+BlockSize
// must be strictly below width.
func windowFits(b *pixelgraft.Buffer, topLeft pixelgraft.Point, blockSize int) bool {
	return topLeft.X >= 0 && topLeft.Y >= 0 &&
		topLeft.X+blockSize < b.Width() && topLeft.Y+blockSize < b.Height()
}

// ScoreBlock compares the (BlockSize+1)² window of a at topLeftA with the
// window of b at topLeftB.
//
// The comparison stops and reports an infeasible score as soon as the
// number of mismatching pairs exceeds cfg.MismatchCap. Windows that do not
// fit their buffer are infeasible without visiting any pixel.
func ScoreBlock(a, b *pixelgraft.Buffer, topLeftA, topLeftB pixelgraft.Point, cfg Config) Score {
	if !windowFits(a, topLeftA, cfg.BlockSize) || !windowFits(b, topLeftB, cfg.BlockSize) {
		return Score{}
	}

	side := cfg.windowSide()
	visited, matched := 0, 0
	for y := 0; y < side; y++ {
		rowA := a.Row(topLeftA.Y + y)[topLeftA.X*3:]
		rowB := b.Row(topLeftB.Y + y)[topLeftB.X*3:]
		for x := 0; x < side; x++ {
			visited++

			i := x * 3
			d := absDiff(rowA[i], rowB[i]) + absDiff(rowA[i+1], rowB[i+1]) + absDiff(rowA[i+2], rowB[i+2])
			if d < cfg.DiffThreshold {
				matched++
			}

			if visited-matched > cfg.MismatchCap {
				return Score{Visited: visited, Matched: matched}
			}
		}
	}
	return Score{Visited: visited, Matched: matched, Feasible: true}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
