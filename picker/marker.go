package picker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pixelgraft/pixelgraft"
)

// Lines written by a marker process.
const (
	MsgWindowClosed = "WINDOW_CLOSED_MANUALLY"
	MsgNoImage      = "NO_IMAGE_SELECTED"
	MsgNoClick      = "NO_CLICK_DATA_AVAILABLE"
)

// EventKind classifies one line of marker output.
type EventKind int

const (
	// EventIgnored is any line that carries no decision.
	EventIgnored EventKind = iota
	// EventPoint carries a clicked coordinate.
	EventPoint
	// EventClosed means the window was closed.
	EventClosed
	// EventNoImage means no image was chosen.
	EventNoImage
	// EventNoClick means the window closed before any click.
	EventNoClick
)

// Event is a parsed marker line.
type Event struct {
	Kind  EventKind
	Point pixelgraft.Point
}

// ParseLine interprets one line of marker output. Coordinates are written
// as "X:<int>,Y:<int>"; malformed coordinates are ignored.
func ParseLine(line string) Event {
	line = strings.TrimSpace(line)
	switch {
	case strings.Contains(line, MsgWindowClosed):
		return Event{Kind: EventClosed}
	case strings.Contains(line, MsgNoImage):
		return Event{Kind: EventNoImage}
	case strings.Contains(line, MsgNoClick):
		return Event{Kind: EventNoClick}
	}

	if !strings.HasPrefix(line, "X:") || !strings.Contains(line, ",Y:") {
		return Event{}
	}
	xPart, yPart, _ := strings.Cut(line, ",")
	x, errX := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(xPart, "X:")))
	y, errY := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(yPart, "Y:")))
	if errX != nil || errY != nil {
		return Event{}
	}
	return Event{Kind: EventPoint, Point: pixelgraft.Pt(x, y)}
}

// Marker runs an external marker program and reads the clicked point from
// its standard output.
//
// The image path is appended to Command. The process is killed as soon as
// a coordinate arrives.
type Marker struct {
	Command []string
}

// ErrNoCommand is returned by a Marker with an empty Command.
var ErrNoCommand = errors.New("picker: marker command is empty")

// PickPoint launches the marker on imagePath and waits for a decision.
func (m Marker) PickPoint(ctx context.Context, imagePath string) (pixelgraft.Point, bool, error) {
	if len(m.Command) == 0 {
		return pixelgraft.Point{}, false, ErrNoCommand
	}
	if _, err := os.Stat(imagePath); err != nil {
		return pixelgraft.Point{}, false, fmt.Errorf("picker: image: %w", err)
	}

	args := append(append([]string(nil), m.Command[1:]...), imagePath)
	cmd := exec.CommandContext(ctx, m.Command[0], args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return pixelgraft.Point{}, false, fmt.Errorf("picker: stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return pixelgraft.Point{}, false, fmt.Errorf("picker: start marker: %w", err)
	}
	log := pixelgraft.Component("picker")
	log.Debug("marker launched", "command", m.Command[0], "image", imagePath)

	stop := func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}

	sc := bufio.NewScanner(stdout)
	for sc.Scan() {
		ev := ParseLine(sc.Text())
		switch ev.Kind {
		case EventPoint:
			stop()
			log.Debug("marker picked", "point", ev.Point)
			return ev.Point, true, nil
		case EventClosed, EventNoImage:
			stop()
			log.Debug("marker dismissed", "line", sc.Text())
			return pixelgraft.Point{}, false, nil
		}
	}
	if err := sc.Err(); err != nil {
		stop()
		return pixelgraft.Point{}, false, fmt.Errorf("picker: read marker output: %w", err)
	}

	waitErr := cmd.Wait()
	if err := ctx.Err(); err != nil {
		return pixelgraft.Point{}, false, err
	}
	if waitErr != nil {
		return pixelgraft.Point{}, false, fmt.Errorf("picker: marker: %w", waitErr)
	}
	return pixelgraft.Point{}, false, nil
}
