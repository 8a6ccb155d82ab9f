package composite

import (
	"errors"
	"testing"

	"github.com/pixelgraft/pixelgraft"
)

var triangle = pixelgraft.Polygon{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 4, Y: 6}}

// gradient gives every pixel a distinct, non-black color.
func gradient(w, h int) *pixelgraft.Buffer {
	b := pixelgraft.NewBuffer(w, h)
	for y := range h {
		for x := range w {
			b.Set(x, y, pixelgraft.RGB{R: uint8(x + 1), G: uint8(y + 1), B: 200})
		}
	}
	return b
}

// referenceSpans lists the triangle pixels expected on a 10×10 grid.
func referenceSpans(edges Edges) map[pixelgraft.Point]bool {
	rows := map[int][2]int{2: {2, 6}, 3: {2, 6}, 4: {3, 5}, 5: {4, 4}}
	want := make(map[pixelgraft.Point]bool)
	for y, r := range rows {
		x0, x1 := r[0], r[1]
		if edges == EdgesExcluded {
			x0, x1 = x0+1, x1-1
		}
		for x := x0; x <= x1; x++ {
			want[pixelgraft.Pt(x, y)] = true
		}
	}
	return want
}

func TestFillInteriorTriangle(t *testing.T) {
	for _, edges := range []Edges{EdgesIncluded, EdgesExcluded} {
		t.Run(edges.String(), func(t *testing.T) {
			target := pixelgraft.NewBuffer(10, 10)
			source := gradient(10, 10)

			n, err := FillInterior(target, triangle, source, pixelgraft.Pt(0, 0), WithEdges(edges))
			if err != nil {
				t.Fatalf("FillInterior() error = %v", err)
			}

			want := referenceSpans(edges)
			if n != len(want) {
				t.Errorf("written = %d, want %d", n, len(want))
			}
			for y := range 10 {
				for x := range 10 {
					got := target.At(x, y)
					if want[pixelgraft.Pt(x, y)] {
						if got != source.At(x, y) {
							t.Errorf("(%d,%d) = %v, want source %v", x, y, got, source.At(x, y))
						}
					} else if got != (pixelgraft.RGB{}) {
						t.Errorf("(%d,%d) = %v, want untouched", x, y, got)
					}
				}
			}
		})
	}
}

func TestFillInteriorOffset(t *testing.T) {
	target := pixelgraft.NewBuffer(10, 10)
	source := gradient(20, 20)
	offset := pixelgraft.Pt(3, 4)

	if _, err := FillInterior(target, triangle, source, offset); err != nil {
		t.Fatal(err)
	}
	if got, want := target.At(4, 4), source.At(7, 8); got != want {
		t.Errorf("At(4,4) = %v, want source(7,8) = %v", got, want)
	}
}

func TestFillInteriorOffsetOutOfBounds(t *testing.T) {
	target := gradient(10, 10)
	before := target.Clone()
	source := gradient(10, 10)

	n, err := FillInterior(target, triangle, source, pixelgraft.Pt(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || !target.Equal(before) {
		t.Errorf("written = %d, target changed = %v; want no-op", n, !target.Equal(before))
	}
}

func TestFillInteriorPartialSource(t *testing.T) {
	target := pixelgraft.NewBuffer(10, 10)
	source := gradient(10, 10)

	// Samples at x+5 > 9 fall outside the source and are skipped.
	n, err := FillInterior(target, triangle, source, pixelgraft.Pt(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	want := 0
	for p := range referenceSpans(EdgesIncluded) {
		if p.X+5 < 10 {
			want++
		}
	}
	if n != want {
		t.Errorf("written = %d, want %d", n, want)
	}
	if got := target.At(6, 2); got != (pixelgraft.RGB{}) {
		t.Errorf("At(6,2) = %v, want untouched", got)
	}
}

func TestFillInteriorDegenerate(t *testing.T) {
	target := gradient(10, 10)
	before := target.Clone()

	n, err := FillInterior(target, pixelgraft.Polygon{{X: 1, Y: 1}, {X: 5, Y: 5}}, gradient(10, 10), pixelgraft.Pt(0, 0))
	if !errors.Is(err, pixelgraft.ErrDegeneratePolygon) {
		t.Errorf("error = %v, want ErrDegeneratePolygon", err)
	}
	if !errors.Is(err, pixelgraft.ErrDegenerateInput) {
		t.Errorf("error = %v, want to wrap ErrDegenerateInput", err)
	}
	if n != 0 || !target.Equal(before) {
		t.Error("degenerate polygon must be a no-op")
	}
}

func TestFillInteriorGroundPolygon(t *testing.T) {
	poly, err := pixelgraft.GroundPolygon([]pixelgraft.Point{{X: 2, Y: 3}, {X: 7, Y: 3}}, 10)
	if err != nil {
		t.Fatal(err)
	}
	target := pixelgraft.NewBuffer(10, 10)
	n, err := FillInterior(target, poly, gradient(10, 10), pixelgraft.Pt(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	// Rectangle x 2..7, rows 3..8; the bottom row is the half-open end.
	if n != 6*6 {
		t.Errorf("written = %d, want 36", n)
	}
}

func TestFillInteriorParallel(t *testing.T) {
	poly := pixelgraft.Polygon{{X: 5, Y: 3}, {X: 90, Y: 10}, {X: 70, Y: 95}, {X: 40, Y: 60}, {X: 2, Y: 80}}
	source := gradient(100, 100)

	seq := pixelgraft.NewBuffer(100, 100)
	nSeq, _ := FillInterior(seq, poly, source, pixelgraft.Pt(1, -2))

	par := pixelgraft.NewBuffer(100, 100)
	nPar, _ := FillInterior(par, poly, source, pixelgraft.Pt(1, -2), WithWorkers(4))

	if nSeq != nPar || !seq.Equal(par) {
		t.Errorf("parallel fill differs: %d vs %d pixels", nPar, nSeq)
	}
}
