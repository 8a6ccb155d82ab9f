// Package scenecheck estimates whether two photographs show the same scene
// by comparing their perceptual hashes.
package scenecheck

import (
	"fmt"

	"github.com/corona10/goimagehash"

	"github.com/pixelgraft/pixelgraft"
)

// DefaultMaxDistance is the Hamming distance up to which two hashes are
// taken to describe the same scene.
const DefaultMaxDistance = 10

// ErrEmpty is returned for buffers without pixels.
var ErrEmpty = pixelgraft.NewDegenerateError("cannot hash an empty buffer")

// Result holds both hashes and their Hamming distance.
type Result struct {
	HashA    uint64
	HashB    uint64
	Distance int
}

// Same reports whether the distance is within maxDistance.
func (r Result) Same(maxDistance int) bool {
	return r.Distance <= maxDistance
}

// Compare hashes a and b with a DCT perceptual hash.
func Compare(a, b *pixelgraft.Buffer) (Result, error) {
	ha, err := hash(a)
	if err != nil {
		return Result{}, err
	}
	hb, err := hash(b)
	if err != nil {
		return Result{}, err
	}

	dist, err := ha.Distance(hb)
	if err != nil {
		return Result{}, fmt.Errorf("scenecheck: distance: %w", err)
	}
	res := Result{HashA: ha.GetHash(), HashB: hb.GetHash(), Distance: dist}
	pixelgraft.Component("scenecheck").Debug("scene compared", "distance", dist, "a", ha.ToString(), "b", hb.ToString())
	return res, nil
}

func hash(b *pixelgraft.Buffer) (*goimagehash.ImageHash, error) {
	if b.Width() == 0 || b.Height() == 0 {
		return nil, ErrEmpty
	}
	h, err := goimagehash.PerceptionHash(b.AsImage())
	if err != nil {
		return nil, fmt.Errorf("scenecheck: hash: %w", err)
	}
	return h, nil
}
