package composite

import "github.com/pixelgraft/pixelgraft"

// Diff returns a copy of primary in which every pixel that differs from its
// offset sample in secondary is painted mark, along with the number of
// painted pixels. Pixels whose sample falls outside secondary are copied
// unchanged.
func Diff(primary, secondary *pixelgraft.Buffer, offset pixelgraft.Point, mark pixelgraft.RGB) (*pixelgraft.Buffer, int) {
	out := primary.Clone()
	n := 0
	for y := range primary.Height() {
		for x := range primary.Width() {
			sample, ok := secondary.Lookup(x+offset.X, y+offset.Y)
			if !ok {
				continue
			}
			if pixelgraft.Distance(primary.At(x, y), sample) > 0 {
				out.Set(x, y, mark)
				n++
			}
		}
	}
	pixelgraft.Component("composite").Debug("diff", "offset", offset, "differing", n)
	return out, n
}
