// Package picker obtains a pixel coordinate for an image from an outside
// source, such as an interactive marker window or a script.
package picker

import (
	"context"

	"github.com/pixelgraft/pixelgraft"
)

// Picker supplies a single point in the pixel space of an image.
//
// PickPoint reports ok == false when the user dismissed the picker without
// choosing a point. An error means the picker itself failed.
type Picker interface {
	PickPoint(ctx context.Context, imagePath string) (p pixelgraft.Point, ok bool, err error)
}

// Static always picks the same point.
type Static struct {
	Point pixelgraft.Point
}

// PickPoint returns s.Point.
func (s Static) PickPoint(ctx context.Context, _ string) (pixelgraft.Point, bool, error) {
	if err := ctx.Err(); err != nil {
		return pixelgraft.Point{}, false, err
	}
	return s.Point, true, nil
}

// Func adapts an ordinary function to the Picker interface.
type Func func(ctx context.Context, imagePath string) (pixelgraft.Point, bool, error)

// PickPoint calls f.
func (f Func) PickPoint(ctx context.Context, imagePath string) (pixelgraft.Point, bool, error) {
	return f(ctx, imagePath)
}
