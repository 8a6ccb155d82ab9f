package picker

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/pixelgraft/pixelgraft"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Event
	}{
		{"X:12,Y:34", Event{Kind: EventPoint, Point: pixelgraft.Pt(12, 34)}},
		{"  X:0,Y:7\n", Event{Kind: EventPoint, Point: pixelgraft.Pt(0, 7)}},
		{"X:-3,Y:5", Event{Kind: EventPoint, Point: pixelgraft.Pt(-3, 5)}},
		{"X:abc,Y:5", Event{}},
		{"X:1;Y:5", Event{}},
		{"Y:1,X:5", Event{}},
		{"WINDOW_CLOSED_MANUALLY", Event{Kind: EventClosed}},
		{"NO_IMAGE_SELECTED", Event{Kind: EventNoImage}},
		{"NO_CLICK_DATA_AVAILABLE", Event{Kind: EventNoClick}},
		{"loading image...", Event{}},
		{"", Event{}},
	}
	for _, tt := range tests {
		if got := ParseLine(tt.line); got != tt.want {
			t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestStatic(t *testing.T) {
	p, ok, err := Static{Point: pixelgraft.Pt(4, 5)}.PickPoint(context.Background(), "ignored")
	if err != nil || !ok || p != pixelgraft.Pt(4, 5) {
		t.Errorf("PickPoint() = %v, %v, %v", p, ok, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := (Static{}).PickPoint(ctx, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("PickPoint(canceled) error = %v", err)
	}
}

func TestFunc(t *testing.T) {
	var got string
	var p Picker = Func(func(_ context.Context, path string) (pixelgraft.Point, bool, error) {
		got = path
		return pixelgraft.Pt(1, 2), true, nil
	})
	if _, ok, _ := p.PickPoint(context.Background(), "a.png"); !ok || got != "a.png" {
		t.Errorf("Func picker not called with the image path")
	}
}

func imageFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := os.WriteFile(path, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// shellMarker runs script with sh; the image path arrives as $1.
func shellMarker(t *testing.T, script string) Marker {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	return Marker{Command: []string{"sh", "-c", script, "marker"}}
}

func TestMarkerLineTooLong(t *testing.T) {
	m := shellMarker(t, `head -c 70000 /dev/zero | tr '\0' a; echo; echo X:1,Y:2; exec sleep 30`)

	start := time.Now()
	_, ok, err := m.PickPoint(context.Background(), imageFile(t))
	if !errors.Is(err, bufio.ErrTooLong) || ok {
		t.Fatalf("PickPoint() = %v, %v; want bufio.ErrTooLong", ok, err)
	}
	if time.Since(start) > 10*time.Second {
		t.Error("marker was not killed after the read failed")
	}
}

func TestMarkerPicksPoint(t *testing.T) {
	m := shellMarker(t, `echo "Loading $1"; echo X:12,Y:34; exec sleep 30`)

	start := time.Now()
	p, ok, err := m.PickPoint(context.Background(), imageFile(t))
	if err != nil || !ok {
		t.Fatalf("PickPoint() = %v, %v, %v", p, ok, err)
	}
	if p != pixelgraft.Pt(12, 34) {
		t.Errorf("point = %v, want (12,34)", p)
	}
	if time.Since(start) > 10*time.Second {
		t.Error("marker was not killed after the point arrived")
	}
}

func TestMarkerReceivesImagePath(t *testing.T) {
	m := shellMarker(t, `case "$1" in *frame.png) echo X:1,Y:2;; *) echo NO_IMAGE_SELECTED;; esac`)
	if _, ok, err := m.PickPoint(context.Background(), imageFile(t)); err != nil || !ok {
		t.Errorf("PickPoint() ok = %v, err = %v; image path not passed", ok, err)
	}
}

func TestMarkerDismissed(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"window closed", `echo NO_CLICK_DATA_AVAILABLE; echo WINDOW_CLOSED_MANUALLY`},
		{"no image", `echo NO_IMAGE_SELECTED`},
		{"silent exit", `true`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := shellMarker(t, tt.script).PickPoint(context.Background(), imageFile(t))
			if err != nil || ok {
				t.Errorf("PickPoint() ok = %v, err = %v; want not picked", ok, err)
			}
		})
	}
}

func TestMarkerFailure(t *testing.T) {
	_, ok, err := shellMarker(t, `exit 3`).PickPoint(context.Background(), imageFile(t))
	if err == nil || ok {
		t.Errorf("PickPoint() ok = %v, err = %v; want error", ok, err)
	}
}

func TestMarkerMissingImage(t *testing.T) {
	m := Marker{Command: []string{"does-not-matter"}}
	_, _, err := m.PickPoint(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("PickPoint(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestMarkerEmptyCommand(t *testing.T) {
	if _, _, err := (Marker{}).PickPoint(context.Background(), ""); !errors.Is(err, ErrNoCommand) {
		t.Errorf("PickPoint() error = %v, want ErrNoCommand", err)
	}
}

func TestMarkerContextCanceled(t *testing.T) {
	m := shellMarker(t, `exec sleep 30`)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, ok, err := m.PickPoint(ctx, imageFile(t))
	if ok || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("PickPoint() ok = %v, err = %v; want deadline exceeded", ok, err)
	}
}
