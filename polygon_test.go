package pixelgraft

import (
	"errors"
	"image"
	"reflect"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, -2)); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := p.Sub(Pt(1, -2)); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2,6)", got)
	}
	if got := OffsetBetween(Pt(504, 431), Pt(510, 420)); got != Pt(6, -11) {
		t.Errorf("OffsetBetween = %v, want (6,-11)", got)
	}
	if !Pt(0, 0).In(image.Rect(0, 0, 1, 1)) || Pt(1, 0).In(image.Rect(0, 0, 1, 1)) {
		t.Error("In() is not half-open")
	}
	if s := Pt(-1, 2).String(); s != "(-1,2)" {
		t.Errorf("String() = %q", s)
	}
}

func TestGroundPolygon(t *testing.T) {
	clicks := []Point{{2, 3}, {5, 1}, {8, 4}}
	got, err := GroundPolygon(clicks, 10)
	if err != nil {
		t.Fatalf("GroundPolygon() = %v", err)
	}
	want := Polygon{{2, 3}, {5, 1}, {8, 4}, {8, 9}, {2, 9}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GroundPolygon() = %v, want %v", got, want)
	}
	if !got.Valid() {
		t.Error("ground polygon should be valid")
	}
}

func TestGroundPolygonTwoClicks(t *testing.T) {
	got, err := GroundPolygon([]Point{{1, 1}, {4, 2}}, 6)
	if err != nil {
		t.Fatalf("GroundPolygon() = %v", err)
	}
	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
}

func TestGroundPolygonDegenerate(t *testing.T) {
	for _, clicks := range [][]Point{nil, {{1, 1}}} {
		_, err := GroundPolygon(clicks, 10)
		if !errors.Is(err, ErrDegeneratePolygon) {
			t.Errorf("GroundPolygon(%v) err = %v, want ErrDegeneratePolygon", clicks, err)
		}
		if !errors.Is(err, ErrDegenerateInput) {
			t.Errorf("GroundPolygon(%v) err should match ErrDegenerateInput", clicks)
		}
	}
}

func TestPolygonBounds(t *testing.T) {
	p := Polygon{{2, 2}, {6, 2}, {4, 6}}
	if got := p.Bounds(); got != image.Rect(2, 2, 7, 7) {
		t.Errorf("Bounds() = %v, want (2,2)-(7,7)", got)
	}
	if got := (Polygon{}).Bounds(); !got.Empty() {
		t.Errorf("empty polygon Bounds() = %v, want empty", got)
	}
}

func TestPathEraseNear(t *testing.T) {
	p := NewPath(Pt(10, 10), Pt(12, 13), Pt(20, 20), Pt(14, 10))
	removed := p.EraseNear(Pt(11, 11), 3)

	wantRemoved := []Point{{10, 10}, {12, 13}, {14, 10}}
	if !reflect.DeepEqual(removed, wantRemoved) {
		t.Errorf("removed = %v, want %v", removed, wantRemoved)
	}
	if !reflect.DeepEqual(p.Points(), []Point{{20, 20}}) {
		t.Errorf("remaining = %v, want [(20,20)]", p.Points())
	}
}

func TestPathClose(t *testing.T) {
	p := NewPath()
	p.Add(Pt(1, 1))
	if _, err := p.Close(5); !errors.Is(err, ErrDegeneratePolygon) {
		t.Errorf("Close with one point err = %v", err)
	}
	p.Add(Pt(3, 2))
	poly, err := p.Close(5)
	if err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if poly[2] != Pt(3, 4) || poly[3] != Pt(1, 4) {
		t.Errorf("ground vertices = %v, %v", poly[2], poly[3])
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}
