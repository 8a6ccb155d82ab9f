package match

import (
	"errors"
	"fmt"
)

// Default search parameters.
const (
	DefaultBlockSize     = 60
	DefaultRangeX        = 40
	DefaultRangeY        = 20
	DefaultDiffThreshold = 15
	DefaultMismatchCap   = 1000
)

// Config holds the tunables of a block search.
type Config struct {
	// BlockSize is the nominal block side. The sampled window is
	// (BlockSize+1)×(BlockSize+1), inclusive at both ends.
	BlockSize int

	// RangeX and RangeY are the half-extents of the offset window.
	RangeX, RangeY int

	// DiffThreshold: a pixel pair matches when its distance is below it.
	DiffThreshold int

	// MismatchCap is the number of mismatching pixels tolerated before a
	// candidate is abandoned as infeasible.
	MismatchCap int

	// Workers bounds the parallelism. Zero means GOMAXPROCS, 1 runs inline.
	Workers int
}

// DefaultConfig returns the default search parameters.
func DefaultConfig() Config {
	return Config{
		BlockSize:     DefaultBlockSize,
		RangeX:        DefaultRangeX,
		RangeY:        DefaultRangeY,
		DiffThreshold: DefaultDiffThreshold,
		MismatchCap:   DefaultMismatchCap,
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.BlockSize < 0 {
		errs = append(errs, fmt.Errorf("match: block size %d must be >= 0", c.BlockSize))
	}
	if c.RangeX < 0 || c.RangeY < 0 {
		errs = append(errs, fmt.Errorf("match: search range (%d,%d) must be >= 0", c.RangeX, c.RangeY))
	}
	if c.MismatchCap < 0 {
		errs = append(errs, fmt.Errorf("match: mismatch cap %d must be >= 0", c.MismatchCap))
	}
	return errors.Join(errs...)
}

// windowSide is the number of pixels sampled along each block axis.
func (c Config) windowSide() int {
	return c.BlockSize + 1
}
